/*
File    : pidgin-go/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_EmptySource(t *testing.T) {
	p := NewParser("")
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Empty(t, prog.Statements)
}

func TestParse_VarDeclAndPrint(t *testing.T) {
	p := NewParser(`let x = 1 + 2; print x;`)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())
	require.Len(t, prog.Statements, 2)

	decl, ok := prog.Statements[0].(*VarDeclStmt)
	require.True(t, ok)
	require.Equal(t, "x", decl.Name)
	bin, ok := decl.Initializer.(*BinaryExpr)
	require.True(t, ok)
	require.Equal(t, Add, bin.Op)

	print, ok := prog.Statements[1].(*PrintStmt)
	require.True(t, ok)
	require.Empty(t, print.Args)
	_, ok = print.Format.(*Identifier)
	require.True(t, ok)
}

func TestParse_AssignmentIsRightAssociativeAndIdentifierOnly(t *testing.T) {
	p := NewParser(`x = y = 3;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	stmt := prog.Statements[0].(*ExpressionStmt)
	outer := stmt.Expr.(*AssignmentExpr)
	require.Equal(t, "x", outer.Name)
	inner, ok := outer.Value.(*AssignmentExpr)
	require.True(t, ok)
	require.Equal(t, "y", inner.Name)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	p := NewParser(`1 = 2;`)
	p.Parse()
	require.True(t, p.HasErrors())
}

func TestParse_PrecedenceChain(t *testing.T) {
	p := NewParser(`1 + 2 * 3 == 7;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	stmt := prog.Statements[0].(*ExpressionStmt)
	top := stmt.Expr.(*BinaryExpr)
	require.Equal(t, Eq, top.Op)
	left := top.Left.(*BinaryExpr)
	require.Equal(t, Add, left.Op)
	right := left.Right.(*BinaryExpr)
	require.Equal(t, Mul, right.Op)
}

func TestParse_FunctionDeclarationAndCall(t *testing.T) {
	p := NewParser(`function f(n){ if (n==0){ return 1; } return n * f(n-1); } print f(5);`)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())
	fn := prog.Statements[0].(*FunctionDeclStmt)
	require.Equal(t, "f", fn.Name)
	require.Equal(t, []string{"n"}, fn.Params)
	body := fn.Body.(*BlockStmt)
	require.Len(t, body.Statements, 2)

	print := prog.Statements[1].(*PrintStmt)
	call := print.Format.(*FunctionCallExpr)
	require.Equal(t, "f", call.Name)
	require.Len(t, call.Args, 1)
}

func TestParse_ArrayLiteralsAndMethodCalls(t *testing.T) {
	p := NewParser(`let a = {1,2,3}; a = a.push(4); print a.length();`)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	decl := prog.Statements[0].(*VarDeclStmt)
	arr, ok := decl.Initializer.(*DynamicArrayLit)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)

	assign := prog.Statements[1].(*ExpressionStmt).Expr.(*AssignmentExpr)
	method := assign.Value.(*MethodCallExpr)
	require.Equal(t, "push", method.Method)
	require.Len(t, method.Args, 1)

	print := prog.Statements[2].(*PrintStmt)
	lengthCall := print.Format.(*MethodCallExpr)
	require.Equal(t, "length", lengthCall.Method)
	require.Len(t, lengthCall.Args, 1)
	_, ok = lengthCall.Args[0].(*NilLit)
	require.True(t, ok)
}

func TestParse_TwoArgMethodProducesRealArgList(t *testing.T) {
	p := NewParser(`o.set("k", 10);`)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())
	call := prog.Statements[0].(*ExpressionStmt).Expr.(*MethodCallExpr)
	require.Equal(t, "set", call.Method)
	require.Len(t, call.Args, 2)
}

func TestParse_ReplaceCharTransform(t *testing.T) {
	p := NewParser("s.replaceChar(`, -> ;`);")
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())
	call := prog.Statements[0].(*ExpressionStmt).Expr.(*MethodCallExpr)
	require.Equal(t, "replaceChar", call.Method)
	require.Len(t, call.Args, 1)
	transform := call.Args[0].(*TransformArg)
	require.Equal(t, ",", transform.From)
	require.Equal(t, ";", transform.To)
}

func TestParse_ImportForms(t *testing.T) {
	p := NewParser(`get Alpha from math; get {Beta, Gamma} from math.sub;`)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	imp1 := prog.Statements[0].(*ImportStmt)
	require.Equal(t, []string{"Alpha"}, imp1.Names)
	require.Equal(t, "math", imp1.Module)

	imp2 := prog.Statements[1].(*ImportStmt)
	require.Equal(t, []string{"Beta", "Gamma"}, imp2.Names)
	require.Equal(t, "math.sub", imp2.Module)
}

func TestParse_IndexExpression(t *testing.T) {
	p := NewParser(`a[0];`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	idx := prog.Statements[0].(*ExpressionStmt).Expr.(*IndexExpr)
	_, ok := idx.Array.(*Identifier)
	require.True(t, ok)
	_, ok = idx.Index.(*NumberLit)
	require.True(t, ok)
}

func TestParse_UnaryMinus(t *testing.T) {
	p := NewParser(`-5;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	u := prog.Statements[0].(*ExpressionStmt).Expr.(*UnaryExpr)
	require.Equal(t, UnaryMinus, u.Op)
}
