/*
File    : pidgin-go/std/time.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"io"
	"time"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins, &Builtin{Name: "Date", Callback: dateFunc})
	Builtins = append(Builtins, &Builtin{Name: "Object", Callback: objectFunc})
}

// dateConstLayout is the date-only form accepted by the one-string
// Date(str) constructor, in addition to objects.DateLayout.
const dateConstLayout = "2006-01-02"

// dateFunc implements Date() / Date(str) / Date(y, m, d).
func dateFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	switch len(args) {
	case 0:
		return &objects.Date{Value: time.Now()}
	case 1:
		s, ok := args[0].(*objects.String)
		if !ok {
			return errf("ERROR: Date expects a string argument, got '%s'", args[0].GetType())
		}
		if t, err := time.ParseInLocation(objects.DateLayout, s.Value, time.Local); err == nil {
			return &objects.Date{Value: t}
		}
		t, err := time.ParseInLocation(dateConstLayout, s.Value, time.Local)
		if err != nil {
			return errf("ERROR: could not parse date '%s'", s.Value)
		}
		return &objects.Date{Value: t}
	case 3:
		y, ok1 := args[0].(*objects.Number)
		m, ok2 := args[1].(*objects.Number)
		d, ok3 := args[2].(*objects.Number)
		if !ok1 || !ok2 || !ok3 {
			return errf("ERROR: Date(y, m, d) expects three numbers")
		}
		return &objects.Date{Value: time.Date(int(y.Value), time.Month(int(m.Value)), int(d.Value), 0, 0, 0, 0, time.Local)}
	default:
		return errf("ERROR: Date expects 0, 1 or 3 arguments, got %d", len(args))
	}
}

// objectFunc implements Object(), returning a fresh empty object.
func objectFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 0 {
		return errf("ERROR: Object expects 0 arguments, got %d", len(args))
	}
	return objects.NewObject()
}
