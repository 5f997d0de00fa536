/*
File    : pidgin-go/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std holds Pidgin's free-function builtin library: readline,
// printErr, Date, Object, and the supplemented domain builtins (hashing,
// regex, JSON, HTTP, OS info, math, conversions, file I/O). Object/string/
// array/date methods are dispatched directly in the eval package, since a
// method always acts on a receiver value rather than being called by name
// alone; this package is for builtins reached only through a bare
// FunctionCall, exactly like the core Date/Object constructors.
package std

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akashmaji946/pidgin-go/objects"
)

// Runtime is the minimal surface a builtin needs back from the evaluator:
// an input reader for readline.
type Runtime interface {
	GetInputReader() *bufio.Reader
}

// CallbackFunc is the shape every builtin implements.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value

// Builtin pairs a callable name with its implementation.
type Builtin struct {
	Name     string
	Callback CallbackFunc
}

// Builtins accumulates every registered builtin across the package's
// files via their individual init() functions.
var Builtins = make([]*Builtin, 0)

// errf builds the internal error signal used throughout this package.
func errf(format string, args ...any) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, args...)}
}
