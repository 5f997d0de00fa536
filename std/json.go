/*
File    : pidgin-go/std/json.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"encoding/json"
	"io"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins,
		&Builtin{Name: "parseJSON", Callback: parseJSONFunc},
		&Builtin{Name: "stringifyJSON", Callback: stringifyJSONFunc},
	)
}

// parseJSONFunc decodes a JSON string into a Pidgin value: objects map to
// Object, arrays to DynamicArray, numbers to Number, strings to String,
// booleans to Boolean, null to Nil.
func parseJSONFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: parseJSON expects 1 argument (string)")
	}
	s, ok := args[0].(*objects.String)
	if !ok {
		return errf("ERROR: parseJSON expects a string argument, got '%s'", args[0].GetType())
	}
	var decoded any
	if err := json.Unmarshal([]byte(s.Value), &decoded); err != nil {
		return errf("ERROR: failed to decode JSON: %v", err)
	}
	return fromJSON(decoded)
}

// stringifyJSONFunc encodes a Pidgin value as a JSON string.
func stringifyJSONFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: stringifyJSON expects 1 argument")
	}
	encoded, err := json.Marshal(toJSON(args[0]))
	if err != nil {
		return errf("ERROR: failed to encode JSON: %v", err)
	}
	return &objects.String{Value: string(encoded)}
}

func fromJSON(v any) objects.Value {
	switch val := v.(type) {
	case nil:
		return &objects.Nil{}
	case bool:
		return &objects.Boolean{Value: val}
	case float64:
		return &objects.Number{Value: val}
	case string:
		return &objects.String{Value: val}
	case []any:
		elems := make([]objects.Value, len(val))
		for i, e := range val {
			elems[i] = fromJSON(e)
		}
		return &objects.DynamicArray{Elements: elems}
	case map[string]any:
		obj := objects.NewObject()
		for k, e := range val {
			obj.Pairs[k] = fromJSON(e)
		}
		return obj
	default:
		return &objects.Nil{}
	}
}

func toJSON(v objects.Value) any {
	switch val := v.(type) {
	case *objects.Nil:
		return nil
	case *objects.Boolean:
		return val.Value
	case *objects.Number:
		return val.Value
	case *objects.String:
		return val.Value
	case *objects.FixedArray:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = toJSON(e)
		}
		return out
	case *objects.DynamicArray:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = toJSON(e)
		}
		return out
	case *objects.Object:
		out := make(map[string]any, len(val.Pairs))
		for k, e := range val.Pairs {
			out[k] = toJSON(e)
		}
		return out
	default:
		return v.ToString()
	}
}
