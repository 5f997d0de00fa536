/*
File    : pidgin-go/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the runtime value model for the Pidgin language:
// Number, String, Boolean, FixedArray, DynamicArray, Object, Date, Nil and
// Function. Every concrete type implements the Value interface, which is
// all the evaluator needs to type-switch, stringify, and compare values.
package objects

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akashmaji946/pidgin-go/parser"
)

// ValueType names the runtime type of a Value for type checks and error
// messages. It is a string so values print legibly in diagnostics.
type ValueType string

const (
	NumberType       ValueType = "number"
	StringType       ValueType = "string"
	BooleanType      ValueType = "boolean"
	NilType          ValueType = "nil"
	FixedArrayType   ValueType = "fixed array"
	DynamicArrayType ValueType = "dynamic array"
	ObjectType       ValueType = "object"
	DateType         ValueType = "date"
	FunctionType     ValueType = "function"
	ErrorType        ValueType = "error"
)

// Value is the interface every Pidgin runtime value implements.
type Value interface {
	// GetType reports the ValueType used for dynamic type checks.
	GetType() ValueType
	// ToString renders the value per the §4.5 stringification rules —
	// this is exactly what `print` and string concatenation use.
	ToString() string
	// ToObject is a more detailed rendering used by debug tooling; most
	// types simply delegate to ToString.
	ToObject() string
}

// Number is the sole numeric type; Pidgin has no separate integer type.
type Number struct{ Value float64 }

func (n *Number) GetType() ValueType { return NumberType }

// ToString renders the shortest decimal that round-trips back to Value,
// dropping a trailing ".0" so integral numbers print as "3" rather than
// "3.0" (required by every §8 scenario that prints an integral result).
func (n *Number) ToString() string {
	s := strconv.FormatFloat(n.Value, 'g', -1, 64)
	return s
}
func (n *Number) ToObject() string { return n.ToString() }

// String is a text value.
type String struct{ Value string }

func (s *String) GetType() ValueType { return StringType }
func (s *String) ToString() string   { return s.Value }
func (s *String) ToObject() string   { return fmt.Sprintf("%q", s.Value) }

// Boolean is a true/false value.
type Boolean struct{ Value bool }

func (b *Boolean) GetType() ValueType { return BooleanType }
func (b *Boolean) ToString() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) ToObject() string { return b.ToString() }

// Nil is the single absent value.
type Nil struct{}

func (n *Nil) GetType() ValueType { return NilType }
func (n *Nil) ToString() string   { return "nil" }
func (n *Nil) ToObject() string   { return "nil" }

// FixedArray is a `[...]` literal. Its length never changes through the
// method API; only `length` and `reverse` apply to it.
type FixedArray struct{ Elements []Value }

func (a *FixedArray) GetType() ValueType { return FixedArrayType }
func (a *FixedArray) ToString() string   { return "[" + joinValues(a.Elements) + "]" }
func (a *FixedArray) ToObject() string   { return a.ToString() }

// DynamicArray is a `{...}` literal. It supports the length-changing
// methods (push, pop, clear, insert, remove) in addition to length and
// reverse.
type DynamicArray struct{ Elements []Value }

func (a *DynamicArray) GetType() ValueType { return DynamicArrayType }
func (a *DynamicArray) ToString() string   { return "{" + joinValues(a.Elements) + "}" }
func (a *DynamicArray) ToObject() string   { return a.ToString() }

func joinValues(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.ToString()
	}
	return strings.Join(parts, ", ")
}

// Object is a keyed mapping created by the Object() builtin and mutated
// via set/get/has/keys. Keys iterate in map order, which is unspecified —
// keys() is documented as unordered.
type Object struct{ Pairs map[string]Value }

func NewObject() *Object { return &Object{Pairs: make(map[string]Value)} }

func (o *Object) GetType() ValueType { return ObjectType }
func (o *Object) ToString() string {
	var parts []string
	for k, v := range o.Pairs {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.ToString()))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
func (o *Object) ToObject() string { return o.ToString() }

// Date wraps a local date-time and is produced by the Date() builtin.
type Date struct{ Value time.Time }

// DateLayout is the canonical string form used to both parse and render
// dates: "YYYY-MM-DD HH:MM:SS".
const DateLayout = "2006-01-02 15:04:05"

func (d *Date) GetType() ValueType { return DateType }
func (d *Date) ToString() string   { return d.Value.Format(DateLayout) }
func (d *Date) ToObject() string   { return d.ToString() }

// Function is a user-defined function: its parameter names and its body
// statement. Functions never capture an enclosing scope (see the flat
// global Environment in the scope package) — calling one only needs the
// parameter list and the body to execute.
type Function struct {
	Params []string
	Body   parser.Stmt
}

func (f *Function) GetType() ValueType { return FunctionType }
func (f *Function) ToString() string {
	return fmt.Sprintf("function(%s) { ... }", strings.Join(f.Params, ", "))
}
func (f *Function) ToObject() string { return f.ToString() }

// Error is an internal-only failure signal that std builtins return as an
// ordinary Value instead of a (Value, error) pair. The evaluator checks
// IsError on every builtin result and turns an Error into a diagnostic,
// so it never appears in a program's runtime value space.
type Error struct{ Message string }

func (e *Error) GetType() ValueType { return ErrorType }
func (e *Error) ToString() string   { return e.Message }
func (e *Error) ToObject() string   { return e.Message }

// IsError reports whether v is the internal error signal.
func IsError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}

// Truthy implements the truthiness rule from §4.3: Boolean by its own
// value, Nil is false, everything else is true.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Boolean:
		return val.Value
	case *Nil:
		return false
	default:
		return true
	}
}

// Equal implements the §4.3 equality rule used by == and !=.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *FixedArray:
		bv, ok := b.(*FixedArray)
		return ok && equalElements(av.Elements, bv.Elements)
	case *DynamicArray:
		bv, ok := b.(*DynamicArray)
		return ok && equalElements(av.Elements, bv.Elements)
	default:
		return false
	}
}

func equalElements(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Clone returns a logical copy of v so that copy-on-read semantics hold:
// reading a variable or passing an argument never lets the caller observe
// later mutation of the source binding through aliasing.
func Clone(v Value) Value {
	switch val := v.(type) {
	case *FixedArray:
		return &FixedArray{Elements: cloneElements(val.Elements)}
	case *DynamicArray:
		return &DynamicArray{Elements: cloneElements(val.Elements)}
	case *Object:
		pairs := make(map[string]Value, len(val.Pairs))
		for k, p := range val.Pairs {
			pairs[k] = Clone(p)
		}
		return &Object{Pairs: pairs}
	default:
		// Scalars (Number, String, Boolean, Nil, Date, Function, Error)
		// are immutable from the language's point of view, so returning
		// the same pointer is observationally identical to copying.
		return v
	}
}

func cloneElements(vs []Value) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Clone(v)
	}
	return out
}
