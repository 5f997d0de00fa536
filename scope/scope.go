/*
File    : pidgin-go/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements Pidgin's variable environment: a single,
// process-wide name-to-value mapping. Pidgin has no nested lexical
// scope — blocks do not introduce one, and a function call fakes a local
// scope by snapshotting the whole table, binding parameters, running the
// body, and restoring the snapshot afterward (see the evaluator's
// callFunction in eval/functions.go).
package scope

import "github.com/akashmaji946/pidgin-go/objects"

// Scope is the flat global variable table.
type Scope struct {
	Variables map[string]objects.Value
}

// NewScope creates an empty global scope.
func NewScope() *Scope {
	return &Scope{Variables: make(map[string]objects.Value)}
}

// LookUp returns the value bound to varName and whether it was found.
func (s *Scope) LookUp(varName string) (objects.Value, bool) {
	v, ok := s.Variables[varName]
	return v, ok
}

// Bind creates or overwrites the binding for varName.
func (s *Scope) Bind(varName string, value objects.Value) {
	s.Variables[varName] = value
}

// Assign updates varName's binding and reports whether it already
// existed. Since the table is flat, this behaves identically to Bind —
// the distinction exists for callers that only want to assign to an
// already-declared name (the evaluator's AssignmentExpr handling).
func (s *Scope) Assign(varName string, value objects.Value) bool {
	_, existed := s.Variables[varName]
	s.Variables[varName] = value
	return existed
}

// Snapshot captures every current binding as an independent copy. Pair
// with Restore around a function call so the callee's parameter bindings
// (and any globals it happens to overwrite) never leak back to the
// caller once the call returns — this is the flat-scope stand-in for a
// real call frame.
func (s *Scope) Snapshot() map[string]objects.Value {
	snap := make(map[string]objects.Value, len(s.Variables))
	for k, v := range s.Variables {
		snap[k] = v
	}
	return snap
}

// Restore replaces the table's contents with a previously captured
// snapshot.
func (s *Scope) Restore(snap map[string]objects.Value) {
	s.Variables = snap
}
