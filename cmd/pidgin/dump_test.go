/*
File    : pidgin-go/cmd/pidgin/dump_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package main

import (
	"strings"
	"testing"

	"github.com/akashmaji946/pidgin-go/parser"
	"github.com/stretchr/testify/require"
)

func TestDumpProgram_LiteralsAndBinary(t *testing.T) {
	prog := &parser.Program{Statements: []parser.Stmt{
		&parser.VarDeclStmt{
			Name: "x",
			Initializer: &parser.BinaryExpr{
				Op:    parser.Add,
				Left:  &parser.NumberLit{Value: 1},
				Right: &parser.NumberLit{Value: 2},
			},
		},
	}}

	out := DumpProgram(prog)
	require.True(t, strings.Contains(out, "VarDeclStmt x"))
	require.True(t, strings.Contains(out, "BinaryExpr op=0"))
	require.True(t, strings.Contains(out, "NumberLit 1"))
	require.True(t, strings.Contains(out, "NumberLit 2"))
}

func TestDumpProgram_FunctionDeclAndMethodCall(t *testing.T) {
	prog := &parser.Program{Statements: []parser.Stmt{
		&parser.FunctionDeclStmt{
			Name:   "greet",
			Params: []string{"name"},
			Body: &parser.BlockStmt{Statements: []parser.Stmt{
				&parser.ReturnStmt{Value: &parser.MethodCallExpr{
					Object: &parser.Identifier{Name: "name"},
					Method: "length",
					Args:   nil,
				}},
			}},
		},
	}}

	out := DumpProgram(prog)
	require.True(t, strings.Contains(out, "FunctionDeclStmt greet([name])"))
	require.True(t, strings.Contains(out, "MethodCallExpr .length"))
	require.True(t, strings.Contains(out, "Identifier name"))
}

func TestDumpProgram_ImportAndTransformArg(t *testing.T) {
	prog := &parser.Program{Statements: []parser.Stmt{
		&parser.ImportStmt{Names: []string{"Helper"}, Module: "math.sub"},
		&parser.ExpressionStmt{Expr: &parser.MethodCallExpr{
			Object: &parser.StringLit{Value: "abc"},
			Method: "replaceChar",
			Args:   []parser.Expr{&parser.TransformArg{From: "a", To: "b"}},
		}},
	}}

	out := DumpProgram(prog)
	require.True(t, strings.Contains(out, "ImportStmt [Helper] from math.sub"))
	require.True(t, strings.Contains(out, `TransformArg "a" -> "b"`))
}

func TestDumpProgram_EmptyProgram(t *testing.T) {
	out := DumpProgram(&parser.Program{})
	require.Equal(t, "Program\n", out)
}
