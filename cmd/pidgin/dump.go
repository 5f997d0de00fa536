/*
File    : pidgin-go/cmd/pidgin/dump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// A small indenting AST printer for --dump-ast. It mirrors the shape of
// the retrieved printing visitor but walks Pidgin's own node set directly
// with a type switch rather than a separate Visitor interface, since the
// AST here has no other consumer that would justify one.
package main

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/pidgin-go/parser"
)

const dumpIndentSize = 2

// DumpProgram renders prog as an indented tree of statements.
func DumpProgram(prog *parser.Program) string {
	var buf bytes.Buffer
	buf.WriteString("Program\n")
	for _, stmt := range prog.Statements {
		dumpStmt(&buf, stmt, dumpIndentSize)
	}
	return buf.String()
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(" ")
	}
}

func dumpStmt(buf *bytes.Buffer, stmt parser.Stmt, depth int) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		indent(buf, depth)
		buf.WriteString("ExpressionStmt\n")
		dumpExpr(buf, s.Expr, depth+dumpIndentSize)
	case *parser.ReturnStmt:
		indent(buf, depth)
		buf.WriteString("ReturnStmt\n")
		if s.Value != nil {
			dumpExpr(buf, s.Value, depth+dumpIndentSize)
		}
	case *parser.PrintStmt:
		indent(buf, depth)
		buf.WriteString("PrintStmt\n")
		dumpExpr(buf, s.Format, depth+dumpIndentSize)
		for _, a := range s.Args {
			dumpExpr(buf, a, depth+dumpIndentSize)
		}
	case *parser.VarDeclStmt:
		indent(buf, depth)
		fmt.Fprintf(buf, "VarDeclStmt %s\n", s.Name)
		if s.Initializer != nil {
			dumpExpr(buf, s.Initializer, depth+dumpIndentSize)
		}
	case *parser.FunctionDeclStmt:
		indent(buf, depth)
		fmt.Fprintf(buf, "FunctionDeclStmt %s(%v)\n", s.Name, s.Params)
		dumpStmt(buf, s.Body, depth+dumpIndentSize)
	case *parser.BlockStmt:
		indent(buf, depth)
		buf.WriteString("BlockStmt\n")
		for _, child := range s.Statements {
			dumpStmt(buf, child, depth+dumpIndentSize)
		}
	case *parser.IfStmt:
		indent(buf, depth)
		buf.WriteString("IfStmt\n")
		dumpExpr(buf, s.Cond, depth+dumpIndentSize)
		dumpStmt(buf, s.Then, depth+dumpIndentSize)
		if s.Else != nil {
			dumpStmt(buf, s.Else, depth+dumpIndentSize)
		}
	case *parser.WhileStmt:
		indent(buf, depth)
		buf.WriteString("WhileStmt\n")
		dumpExpr(buf, s.Cond, depth+dumpIndentSize)
		dumpStmt(buf, s.Body, depth+dumpIndentSize)
	case *parser.ImportStmt:
		indent(buf, depth)
		fmt.Fprintf(buf, "ImportStmt %v from %s\n", s.Names, s.Module)
	default:
		indent(buf, depth)
		fmt.Fprintf(buf, "<unknown statement %T>\n", stmt)
	}
}

func dumpExpr(buf *bytes.Buffer, expr parser.Expr, depth int) {
	indent(buf, depth)
	switch e := expr.(type) {
	case *parser.NumberLit:
		fmt.Fprintf(buf, "NumberLit %g\n", e.Value)
	case *parser.StringLit:
		fmt.Fprintf(buf, "StringLit %q\n", e.Value)
	case *parser.BooleanLit:
		fmt.Fprintf(buf, "BooleanLit %v\n", e.Value)
	case *parser.NilLit:
		buf.WriteString("NilLit\n")
	case *parser.Identifier:
		fmt.Fprintf(buf, "Identifier %s\n", e.Name)
	case *parser.FixedArrayLit:
		buf.WriteString("FixedArrayLit\n")
		for _, el := range e.Elements {
			dumpExpr(buf, el, depth+dumpIndentSize)
		}
	case *parser.DynamicArrayLit:
		buf.WriteString("DynamicArrayLit\n")
		for _, el := range e.Elements {
			dumpExpr(buf, el, depth+dumpIndentSize)
		}
	case *parser.IndexExpr:
		buf.WriteString("IndexExpr\n")
		dumpExpr(buf, e.Array, depth+dumpIndentSize)
		dumpExpr(buf, e.Index, depth+dumpIndentSize)
	case *parser.UnaryExpr:
		buf.WriteString("UnaryExpr -\n")
		dumpExpr(buf, e.Operand, depth+dumpIndentSize)
	case *parser.BinaryExpr:
		fmt.Fprintf(buf, "BinaryExpr op=%d\n", e.Op)
		dumpExpr(buf, e.Left, depth+dumpIndentSize)
		dumpExpr(buf, e.Right, depth+dumpIndentSize)
	case *parser.AssignmentExpr:
		fmt.Fprintf(buf, "AssignmentExpr %s\n", e.Name)
		dumpExpr(buf, e.Value, depth+dumpIndentSize)
	case *parser.FunctionCallExpr:
		fmt.Fprintf(buf, "FunctionCallExpr %s\n", e.Name)
		for _, a := range e.Args {
			dumpExpr(buf, a, depth+dumpIndentSize)
		}
	case *parser.MethodCallExpr:
		fmt.Fprintf(buf, "MethodCallExpr .%s\n", e.Method)
		dumpExpr(buf, e.Object, depth+dumpIndentSize)
		for _, a := range e.Args {
			dumpExpr(buf, a, depth+dumpIndentSize)
		}
	case *parser.TransformArg:
		fmt.Fprintf(buf, "TransformArg %q -> %q\n", e.From, e.To)
	default:
		fmt.Fprintf(buf, "<unknown expression %T>\n", expr)
	}
}
