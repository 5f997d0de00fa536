/*
File    : pidgin-go/diagnostics/diagnostics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diagnostics gives the evaluator's error sites (including the
// module loader) a single structured type instead of scattered
// fmt.Errorf calls. The lexer and parser keep their own error forms
// (lexer.LexError and the parser's error strings). Diagnostic.Error()
// renders a flat string, so downstream code (REPL, file-mode exit code,
// test fixtures) handles it like any plain error.
package diagnostics

import "fmt"

// Kind classifies a Diagnostic by the pipeline stage that raised it.
type Kind string

const (
	Lexical     Kind = "LEXER ERROR"
	Syntactic   Kind = "PARSE ERROR"
	Semantic    Kind = "RUNTIME ERROR"
	Module      Kind = "MODULE ERROR"
	ControlFlow Kind = "CONTROL FLOW ERROR"
)

// Diagnostic is a single failure with an optional source position. Line
// and Column are zero when the failure has no meaningful position (e.g. a
// missing module file).
type Diagnostic struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

// New constructs a Diagnostic at a known source position.
func New(kind Kind, line, column int, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// Without constructs a positionless Diagnostic (e.g. file I/O failures).
func Without(kind Kind, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error renders the diagnostic as a flat string of the form
// "[KIND] message (line L, column C)", with the position suffix omitted
// when Line is zero. This is the only representation any caller outside
// this package ever observes.
func (d *Diagnostic) Error() string {
	if d.Line == 0 && d.Column == 0 {
		return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("[%s] %s (line %d, column %d)", d.Kind, d.Message, d.Line, d.Column)
}
