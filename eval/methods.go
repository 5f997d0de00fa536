/*
File    : pidgin-go/eval/methods.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Method dispatch for the four receiver kinds Pidgin methods act on:
// String, FixedArray/DynamicArray, Object, and Date (§4.3 Method
// contracts). Dispatch is a switch on the receiver's type and then on the
// method name rather than a registry, since the parser already rejected
// any name outside the recognized set (§4.2); a recognized name that the
// receiver's type does not support fails at run time.
package eval

import (
	"strings"

	"github.com/akashmaji946/pidgin-go/diagnostics"
	"github.com/akashmaji946/pidgin-go/objects"
	"github.com/akashmaji946/pidgin-go/parser"
)

func (e *Evaluator) evalMethodCall(ex *parser.MethodCallExpr) (objects.Value, error) {
	receiver, err := e.evalExpr(ex.Object)
	if err != nil {
		return nil, err
	}

	if ex.Method == "replaceChar" {
		return e.evalReplaceChar(receiver, ex)
	}

	args, err := e.evalExprList(ex.Args)
	if err != nil {
		return nil, err
	}

	switch r := receiver.(type) {
	case *objects.String:
		return e.stringMethod(r, ex.Method, args)
	case *objects.FixedArray:
		return e.fixedArrayMethod(r, ex.Method, args)
	case *objects.DynamicArray:
		return e.dynamicArrayMethod(r, ex.Method, args)
	case *objects.Object:
		return e.objectMethod(r, ex.Method, args)
	case *objects.Date:
		return e.dateMethod(r, ex.Method, args)
	default:
		return nil, diagnostics.Without(diagnostics.Semantic,
			"type '%s' has no method '%s'", receiver.GetType(), ex.Method)
	}
}

// evalReplaceChar resolves each side of a TransformArg as a variable
// name first, falling back to its literal text when unbound, per §4.3.
func (e *Evaluator) evalReplaceChar(receiver objects.Value, ex *parser.MethodCallExpr) (objects.Value, error) {
	str, ok := receiver.(*objects.String)
	if !ok {
		return nil, diagnostics.Without(diagnostics.Semantic,
			"replaceChar requires a String receiver, got '%s'", receiver.GetType())
	}
	if len(ex.Args) != 1 {
		return nil, diagnostics.Without(diagnostics.Semantic, "replaceChar expects a single transform argument")
	}
	transform, ok := ex.Args[0].(*parser.TransformArg)
	if !ok {
		return nil, diagnostics.Without(diagnostics.Semantic, "replaceChar expects a transform argument")
	}
	from := e.resolveTransformSide(transform.From)
	to := e.resolveTransformSide(transform.To)
	return &objects.String{Value: strings.ReplaceAll(str.Value, from, to)}, nil
}

func (e *Evaluator) resolveTransformSide(text string) string {
	if v, ok := e.Scp.LookUp(text); ok {
		return v.ToString()
	}
	return text
}

func (e *Evaluator) stringMethod(s *objects.String, method string, args []objects.Value) (objects.Value, error) {
	switch method {
	case "toUpper":
		return &objects.String{Value: strings.ToUpper(s.Value)}, nil
	case "toLower":
		return &objects.String{Value: strings.ToLower(s.Value)}, nil
	case "trim":
		return &objects.String{Value: strings.TrimSpace(s.Value)}, nil
	case "length":
		return &objects.Number{Value: float64(len(s.Value))}, nil
	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "String has no method '%s'", method)
	}
}

// fixedArrayMethod implements the read-only subset (length, reverse)
// available to FixedArray — mutation through the method API is reserved
// for DynamicArray.
func (e *Evaluator) fixedArrayMethod(a *objects.FixedArray, method string, args []objects.Value) (objects.Value, error) {
	switch method {
	case "length":
		return &objects.Number{Value: float64(len(a.Elements))}, nil
	case "reverse":
		return &objects.FixedArray{Elements: reversedElements(a.Elements)}, nil
	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "fixed array has no method '%s'", method)
	}
}

func (e *Evaluator) dynamicArrayMethod(a *objects.DynamicArray, method string, args []objects.Value) (objects.Value, error) {
	switch method {
	case "length":
		return &objects.Number{Value: float64(len(a.Elements))}, nil
	case "reverse":
		return &objects.DynamicArray{Elements: reversedElements(a.Elements)}, nil
	case "push":
		if len(args) != 1 {
			return nil, diagnostics.Without(diagnostics.Semantic, "push expects 1 argument")
		}
		out := append(append([]objects.Value{}, a.Elements...), objects.Clone(args[0]))
		return &objects.DynamicArray{Elements: out}, nil
	case "pop":
		if len(a.Elements) == 0 {
			return nil, diagnostics.Without(diagnostics.Semantic, "pop on an empty array")
		}
		return objects.Clone(a.Elements[len(a.Elements)-1]), nil
	case "clear":
		return &objects.DynamicArray{Elements: []objects.Value{}}, nil
	case "insert":
		if len(args) != 2 {
			return nil, diagnostics.Without(diagnostics.Semantic, "insert expects 2 arguments (index, value)")
		}
		idx, ok := indexArg(args[0])
		if !ok || idx < 0 || idx > len(a.Elements) {
			return nil, diagnostics.Without(diagnostics.Semantic, "insert index out of bounds")
		}
		out := make([]objects.Value, 0, len(a.Elements)+1)
		out = append(out, a.Elements[:idx]...)
		out = append(out, objects.Clone(args[1]))
		out = append(out, a.Elements[idx:]...)
		return &objects.DynamicArray{Elements: out}, nil
	case "remove":
		if len(args) != 1 {
			return nil, diagnostics.Without(diagnostics.Semantic, "remove expects 1 argument (index)")
		}
		idx, ok := indexArg(args[0])
		if !ok || idx < 0 || idx >= len(a.Elements) {
			return nil, diagnostics.Without(diagnostics.Semantic, "remove index out of bounds")
		}
		return objects.Clone(a.Elements[idx]), nil
	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "dynamic array has no method '%s'", method)
	}
}

func indexArg(v objects.Value) (int, bool) {
	n, ok := v.(*objects.Number)
	if !ok {
		return 0, false
	}
	return int(n.Value), true
}

func reversedElements(elems []objects.Value) []objects.Value {
	out := make([]objects.Value, len(elems))
	for i, v := range elems {
		out[len(elems)-1-i] = objects.Clone(v)
	}
	return out
}

func (e *Evaluator) objectMethod(o *objects.Object, method string, args []objects.Value) (objects.Value, error) {
	switch method {
	case "set":
		if len(args) != 2 {
			return nil, diagnostics.Without(diagnostics.Semantic, "set expects 2 arguments (key, value)")
		}
		out := objects.NewObject()
		for k, v := range o.Pairs {
			out.Pairs[k] = v
		}
		out.Pairs[args[0].ToString()] = objects.Clone(args[1])
		return out, nil
	case "get":
		if len(args) != 1 {
			return nil, diagnostics.Without(diagnostics.Semantic, "get expects 1 argument (key)")
		}
		if v, ok := o.Pairs[args[0].ToString()]; ok {
			return objects.Clone(v), nil
		}
		return &objects.Nil{}, nil
	case "has":
		if len(args) != 1 {
			return nil, diagnostics.Without(diagnostics.Semantic, "has expects 1 argument (key)")
		}
		_, ok := o.Pairs[args[0].ToString()]
		return &objects.Boolean{Value: ok}, nil
	case "keys":
		keys := make([]objects.Value, 0, len(o.Pairs))
		for k := range o.Pairs {
			keys = append(keys, &objects.String{Value: k})
		}
		return &objects.DynamicArray{Elements: keys}, nil
	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "object has no method '%s'", method)
	}
}

func (e *Evaluator) dateMethod(d *objects.Date, method string, args []objects.Value) (objects.Value, error) {
	switch method {
	case "format":
		if len(args) != 1 {
			return nil, diagnostics.Without(diagnostics.Semantic, "format expects 1 argument (layout)")
		}
		layout, ok := args[0].(*objects.String)
		if !ok {
			return nil, diagnostics.Without(diagnostics.Semantic, "format expects a string layout")
		}
		return &objects.String{Value: d.Value.Format(translateDateLayout(layout.Value))}, nil
	case "getYear":
		return &objects.Number{Value: float64(d.Value.Year())}, nil
	case "getMonth":
		return &objects.Number{Value: float64(int(d.Value.Month()))}, nil
	case "getDay":
		return &objects.Number{Value: float64(d.Value.Day())}, nil
	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "date has no method '%s'", method)
	}
}

// translateDateLayout turns the common "YYYY-MM-DD" style tokens into
// Go's reference-time layout, so scripts write the layout they mean
// rather than Go's Mon Jan 2 15:04:05 reference string.
func translateDateLayout(layout string) string {
	replacer := strings.NewReplacer(
		"YYYY", "2006", "MM", "01", "DD", "02",
		"HH", "15", "mm", "04", "ss", "05",
	)
	return replacer.Replace(layout)
}
