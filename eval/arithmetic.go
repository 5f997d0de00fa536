/*
File    : pidgin-go/eval/arithmetic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Arithmetic, relational, and equality operator semantics (§4.3). Every
// failure here carries the line/column the parser attached to the
// BinaryExpr node, since that is the only position information a
// compound expression has.
package eval

import (
	"github.com/akashmaji946/pidgin-go/diagnostics"
	"github.com/akashmaji946/pidgin-go/objects"
	"github.com/akashmaji946/pidgin-go/parser"
)

func (e *Evaluator) evalBinary(ex *parser.BinaryExpr) (objects.Value, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op {
	case parser.Eq:
		return &objects.Boolean{Value: objects.Equal(left, right)}, nil
	case parser.NotEq:
		return &objects.Boolean{Value: !objects.Equal(left, right)}, nil
	case parser.Add:
		return e.evalAdd(left, right, ex)
	case parser.Sub, parser.Mul, parser.Div:
		return e.evalArithmetic(ex.Op, left, right, ex)
	case parser.Lt, parser.Gt, parser.LtEq, parser.GtEq:
		return e.evalCompare(ex.Op, left, right, ex)
	default:
		return nil, diagnostics.New(diagnostics.Semantic, ex.Line, ex.Column, "unsupported binary operator")
	}
}

// evalAdd implements '+': Number+Number adds numerically; any pairing
// with at least one String side (and the other String|Number|Boolean)
// concatenates via standard stringification.
func (e *Evaluator) evalAdd(left, right objects.Value, ex *parser.BinaryExpr) (objects.Value, error) {
	ln, lok := left.(*objects.Number)
	rn, rok := right.(*objects.Number)
	if lok && rok {
		return &objects.Number{Value: ln.Value + rn.Value}, nil
	}
	if isStringable(left) && isStringable(right) && (isString(left) || isString(right)) {
		return &objects.String{Value: left.ToString() + right.ToString()}, nil
	}
	return nil, diagnostics.New(diagnostics.Semantic, ex.Line, ex.Column,
		"cannot add values of type '%s' and '%s'", left.GetType(), right.GetType())
}

func isString(v objects.Value) bool {
	_, ok := v.(*objects.String)
	return ok
}

// isStringable reports whether v is one of String|Number|Boolean, the
// set allowed on either side of a String concatenation.
func isStringable(v objects.Value) bool {
	switch v.(type) {
	case *objects.String, *objects.Number, *objects.Boolean:
		return true
	default:
		return false
	}
}

func (e *Evaluator) evalArithmetic(op parser.BinaryOp, left, right objects.Value, ex *parser.BinaryExpr) (objects.Value, error) {
	ln, lok := left.(*objects.Number)
	rn, rok := right.(*objects.Number)
	if !lok || !rok {
		return nil, diagnostics.New(diagnostics.Semantic, ex.Line, ex.Column,
			"operator requires two numbers, got '%s' and '%s'", left.GetType(), right.GetType())
	}
	switch op {
	case parser.Sub:
		return &objects.Number{Value: ln.Value - rn.Value}, nil
	case parser.Mul:
		return &objects.Number{Value: ln.Value * rn.Value}, nil
	case parser.Div:
		if rn.Value == 0 {
			return nil, diagnostics.New(diagnostics.Semantic, ex.Line, ex.Column, "division by zero")
		}
		return &objects.Number{Value: ln.Value / rn.Value}, nil
	default:
		return nil, diagnostics.New(diagnostics.Semantic, ex.Line, ex.Column, "unsupported arithmetic operator")
	}
}

func (e *Evaluator) evalCompare(op parser.BinaryOp, left, right objects.Value, ex *parser.BinaryExpr) (objects.Value, error) {
	ln, lok := left.(*objects.Number)
	rn, rok := right.(*objects.Number)
	if !lok || !rok {
		return nil, diagnostics.New(diagnostics.Semantic, ex.Line, ex.Column,
			"comparison requires two numbers, got '%s' and '%s'", left.GetType(), right.GetType())
	}
	var result bool
	switch op {
	case parser.Lt:
		result = ln.Value < rn.Value
	case parser.Gt:
		result = ln.Value > rn.Value
	case parser.LtEq:
		result = ln.Value <= rn.Value
	case parser.GtEq:
		result = ln.Value >= rn.Value
	}
	return &objects.Boolean{Value: result}, nil
}
