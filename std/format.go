/*
File    : pidgin-go/std/format.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"io"
	"strconv"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins,
		&Builtin{Name: "toNumber", Callback: toNumberFunc},
		&Builtin{Name: "toStringValue", Callback: toStringValueFunc},
		&Builtin{Name: "toBoolean", Callback: toBooleanFunc},
	)
}

// toNumberFunc coerces v to a Number: numbers pass through, booleans
// become 1/0, strings are parsed, anything else fails.
func toNumberFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: toNumber expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *objects.Number:
		return v
	case *objects.Boolean:
		if v.Value {
			return &objects.Number{Value: 1}
		}
		return &objects.Number{Value: 0}
	case *objects.String:
		n, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return errf("ERROR: could not convert '%s' to a number", v.Value)
		}
		return &objects.Number{Value: n}
	default:
		return errf("ERROR: toNumber cannot convert a value of type '%s'", args[0].GetType())
	}
}

// toStringValueFunc renders v with the §4.5 stringification rules.
func toStringValueFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: toStringValue expects 1 argument, got %d", len(args))
	}
	return &objects.String{Value: args[0].ToString()}
}

// toBooleanFunc applies the truthiness rule explicitly.
func toBooleanFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: toBoolean expects 1 argument, got %d", len(args))
	}
	return &objects.Boolean{Value: objects.Truthy(args[0])}
}
