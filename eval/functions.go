/*
File    : pidgin-go/eval/functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// User function calls and the builtin free-function dispatch table
// (readline, printErr, Date, Object, and the supplemented domain
// builtins — §4.9). A call's name is looked up first in the global scope,
// then in the builtin table, so a user-defined function with the same
// name as a builtin shadows it; a non-function value bound under that
// name makes the call fail as not callable.
package eval

import (
	"github.com/akashmaji946/pidgin-go/diagnostics"
	"github.com/akashmaji946/pidgin-go/objects"
	"github.com/akashmaji946/pidgin-go/parser"
)

func (e *Evaluator) evalFunctionCall(ex *parser.FunctionCallExpr) (objects.Value, error) {
	args, err := e.evalExprList(ex.Args)
	if err != nil {
		return nil, err
	}

	if fnVal, ok := e.Scp.LookUp(ex.Name); ok {
		fn, ok := fnVal.(*objects.Function)
		if !ok {
			return nil, diagnostics.Without(diagnostics.Semantic, "'%s' is not callable", ex.Name)
		}
		return e.callFunction(fn, args)
	}

	if builtin, ok := e.Builtins[ex.Name]; ok {
		result := builtin.Callback(e, e.Writer, args...)
		if objects.IsError(result) {
			return nil, diagnostics.Without(diagnostics.Semantic, "%s", result.(*objects.Error).Message)
		}
		return result, nil
	}

	return nil, diagnostics.Without(diagnostics.Semantic, "undefined function '%s'", ex.Name)
}

// callFunction implements the §4.3 frame state machine:
// Ready -> Snapshotting -> Binding -> Executing -> (Returning | Falling-off) -> Restoring -> Done.
// Any error aborts the call but still restores the snapshot first, so a
// failed call never leaks partially-bound parameters into the caller.
func (e *Evaluator) callFunction(fn *objects.Function, args []objects.Value) (result objects.Value, callErr error) {
	if len(args) != len(fn.Params) {
		return nil, diagnostics.Without(diagnostics.Semantic,
			"function expects %d argument(s), got %d", len(fn.Params), len(args))
	}

	snapshot := e.Scp.Snapshot() // Snapshotting
	defer e.Scp.Restore(snapshot) // Restoring, guaranteed on every exit path

	for i, param := range fn.Params { // Binding
		e.Scp.Bind(param, objects.Clone(args[i]))
	}

	flow, err := e.evalStatement(fn.Body) // Executing
	if err != nil {
		return nil, err
	}
	if flow.Kind == SigReturn { // Returning
		return flow.Value, nil
	}
	return &objects.Nil{}, nil // Falling-off
}
