/*
File    : pidgin-go/eval/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package eval

import (
	"github.com/akashmaji946/pidgin-go/diagnostics"
	"github.com/akashmaji946/pidgin-go/objects"
	"github.com/akashmaji946/pidgin-go/parser"
)

func (e *Evaluator) evalExpr(expr parser.Expr) (objects.Value, error) {
	switch ex := expr.(type) {
	case *parser.NumberLit:
		return &objects.Number{Value: ex.Value}, nil
	case *parser.StringLit:
		return &objects.String{Value: ex.Value}, nil
	case *parser.BooleanLit:
		return &objects.Boolean{Value: ex.Value}, nil
	case *parser.NilLit:
		return &objects.Nil{}, nil

	case *parser.Identifier:
		v, ok := e.Scp.LookUp(ex.Name)
		if !ok {
			return nil, diagnostics.Without(diagnostics.Semantic, "undefined variable '%s'", ex.Name)
		}
		return objects.Clone(v), nil

	case *parser.FixedArrayLit:
		elems, err := e.evalExprList(ex.Elements)
		if err != nil {
			return nil, err
		}
		return &objects.FixedArray{Elements: elems}, nil

	case *parser.DynamicArrayLit:
		elems, err := e.evalExprList(ex.Elements)
		if err != nil {
			return nil, err
		}
		return &objects.DynamicArray{Elements: elems}, nil

	case *parser.IndexExpr:
		return e.evalIndex(ex)

	case *parser.UnaryExpr:
		return e.evalUnary(ex)

	case *parser.BinaryExpr:
		return e.evalBinary(ex)

	case *parser.AssignmentExpr:
		val, err := e.evalExpr(ex.Value)
		if err != nil {
			return nil, err
		}
		e.Scp.Assign(ex.Name, objects.Clone(val))
		return val, nil

	case *parser.FunctionCallExpr:
		return e.evalFunctionCall(ex)

	case *parser.MethodCallExpr:
		return e.evalMethodCall(ex)

	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "unsupported expression type %T", expr)
	}
}

func (e *Evaluator) evalExprList(exprs []parser.Expr) ([]objects.Value, error) {
	out := make([]objects.Value, len(exprs))
	for i, ex := range exprs {
		v, err := e.evalExpr(ex)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *Evaluator) evalUnary(ex *parser.UnaryExpr) (objects.Value, error) {
	operand, err := e.evalExpr(ex.Operand)
	if err != nil {
		return nil, err
	}
	switch ex.Op {
	case parser.UnaryMinus:
		n, ok := operand.(*objects.Number)
		if !ok {
			return nil, diagnostics.Without(diagnostics.Semantic, "unary '-' requires a number, got '%s'", operand.GetType())
		}
		return &objects.Number{Value: -n.Value}, nil
	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "unsupported unary operator")
	}
}

func (e *Evaluator) evalIndex(ex *parser.IndexExpr) (objects.Value, error) {
	arr, err := e.evalExpr(ex.Array)
	if err != nil {
		return nil, err
	}
	idxVal, err := e.evalExpr(ex.Index)
	if err != nil {
		return nil, err
	}
	idxNum, ok := idxVal.(*objects.Number)
	if !ok {
		return nil, diagnostics.Without(diagnostics.Semantic, "array index must be a number, got '%s'", idxVal.GetType())
	}
	idx := int(idxNum.Value)
	if idx < 0 {
		idx = 0
	}

	var elems []objects.Value
	switch a := arr.(type) {
	case *objects.FixedArray:
		elems = a.Elements
	case *objects.DynamicArray:
		elems = a.Elements
	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "cannot index a value of type '%s'", arr.GetType())
	}
	if idx >= len(elems) {
		return nil, diagnostics.Without(diagnostics.Semantic, "index %d out of bounds for array of length %d", idx, len(elems))
	}
	return objects.Clone(elems[idx]), nil
}
