/*
File    : pidgin-go/std/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"io"
	"math"
	"math/rand"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins,
		&Builtin{Name: "sqrtOf", Callback: sqrtOfFunc},
		&Builtin{Name: "powOf", Callback: powOfFunc},
		&Builtin{Name: "absOf", Callback: absOfFunc},
		&Builtin{Name: "floorOf", Callback: floorOfFunc},
		&Builtin{Name: "ceilOf", Callback: ceilOfFunc},
		&Builtin{Name: "randomFloat", Callback: randomFloatFunc},
		&Builtin{Name: "randomInt", Callback: randomIntFunc},
	)
}

func asNumber(v objects.Value) (float64, bool) {
	n, ok := v.(*objects.Number)
	if !ok {
		return 0, false
	}
	return n.Value, true
}

func sqrtOfFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: sqrtOf expects 1 argument (number)")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return errf("ERROR: sqrtOf expects a number, got '%s'", args[0].GetType())
	}
	if n < 0 {
		return errf("ERROR: sqrtOf of a negative number")
	}
	return &objects.Number{Value: math.Sqrt(n)}
}

func powOfFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 2 {
		return errf("ERROR: powOf expects 2 arguments (base, exponent)")
	}
	base, ok1 := asNumber(args[0])
	exp, ok2 := asNumber(args[1])
	if !ok1 || !ok2 {
		return errf("ERROR: powOf expects two numbers")
	}
	return &objects.Number{Value: math.Pow(base, exp)}
}

func absOfFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: absOf expects 1 argument (number)")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return errf("ERROR: absOf expects a number, got '%s'", args[0].GetType())
	}
	return &objects.Number{Value: math.Abs(n)}
}

func floorOfFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: floorOf expects 1 argument (number)")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return errf("ERROR: floorOf expects a number, got '%s'", args[0].GetType())
	}
	return &objects.Number{Value: math.Floor(n)}
}

func ceilOfFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: ceilOf expects 1 argument (number)")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return errf("ERROR: ceilOf expects a number, got '%s'", args[0].GetType())
	}
	return &objects.Number{Value: math.Ceil(n)}
}

func randomFloatFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 0 {
		return errf("ERROR: randomFloat expects 0 arguments, got %d", len(args))
	}
	return &objects.Number{Value: rand.Float64()}
}

func randomIntFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 2 {
		return errf("ERROR: randomInt expects 2 arguments (min, max)")
	}
	lo, ok1 := asNumber(args[0])
	hi, ok2 := asNumber(args[1])
	if !ok1 || !ok2 {
		return errf("ERROR: randomInt expects two numbers")
	}
	if hi < lo {
		return errf("ERROR: randomInt range is empty (max < min)")
	}
	return &objects.Number{Value: float64(int(lo) + rand.Intn(int(hi)-int(lo)+1))}
}
