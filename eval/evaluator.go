/*
File    : pidgin-go/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks a parsed Program and executes it against a single
// flat global Scope. There is no Visitor interface — Pidgin's statement
// and expression sets are small and stable enough that a plain type
// switch in evalStatement/evalExpr reads more directly than a dispatch
// table.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/pidgin-go/diagnostics"
	"github.com/akashmaji946/pidgin-go/objects"
	"github.com/akashmaji946/pidgin-go/parser"
	"github.com/akashmaji946/pidgin-go/scope"
	"github.com/akashmaji946/pidgin-go/std"
)

// Signal distinguishes ordinary fall-through from an in-flight Return.
type Signal int

const (
	SigNone Signal = iota
	SigReturn
)

// ControlFlow is the non-error half of a statement's outcome: either
// "keep going" or "a Return is unwinding toward the enclosing function
// call boundary, carrying Value".
type ControlFlow struct {
	Kind  Signal
	Value objects.Value
}

var flowNone = &ControlFlow{Kind: SigNone}

// Evaluator holds everything a running Pidgin program needs: its global
// scope, the registered builtins, I/O streams, and import-cycle tracking
// for the module loader (§4.4).
type Evaluator struct {
	Scp          *scope.Scope
	Builtins     map[string]*std.Builtin
	Writer       io.Writer
	Reader       *bufio.Reader
	BaseDir      string   // directory module imports resolve against first
	ImportStack  []string // resolved file paths currently being loaded, for cycle detection
}

// NewEvaluator creates a fresh evaluator with an empty global scope,
// stdout/stdin as its default streams, and every registered builtin
// bound by name.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Scp:      scope.NewScope(),
		Builtins: make(map[string]*std.Builtin, len(std.Builtins)),
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
	}
	for _, b := range std.Builtins {
		ev.Builtins[b.Name] = b
	}
	return ev
}

// SetWriter redirects the evaluator's `print` output.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects the evaluator's `readline` input.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// GetInputReader implements std.Runtime.
func (e *Evaluator) GetInputReader() *bufio.Reader { return e.Reader }

// Interpret runs every top-level statement of prog in order. A Return
// reaching this level is itself an error (§7 control-flow misuse).
func (e *Evaluator) Interpret(prog *parser.Program) error {
	for _, stmt := range prog.Statements {
		flow, err := e.evalStatement(stmt)
		if err != nil {
			return err
		}
		if flow.Kind == SigReturn {
			return diagnostics.Without(diagnostics.ControlFlow, "return outside of a function")
		}
	}
	return nil
}

// interpretModule runs a module's top-level statements the same way
// Interpret does; a bare Return is rejected here too (§4.4 step 4), with
// its own "return at module top level" message.
func (e *Evaluator) interpretModule(prog *parser.Program) error {
	for _, stmt := range prog.Statements {
		flow, err := e.evalStatement(stmt)
		if err != nil {
			return err
		}
		if flow.Kind == SigReturn {
			return diagnostics.Without(diagnostics.ControlFlow, "return at module top level")
		}
	}
	return nil
}

func (e *Evaluator) evalStatement(stmt parser.Stmt) (*ControlFlow, error) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := e.evalExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		return flowNone, nil

	case *parser.PrintStmt:
		return flowNone, e.evalPrint(s)

	case *parser.VarDeclStmt:
		var val objects.Value = &objects.Nil{}
		if s.Initializer != nil {
			v, err := e.evalExpr(s.Initializer)
			if err != nil {
				return nil, err
			}
			val = v
		}
		e.Scp.Bind(s.Name, objects.Clone(val))
		return flowNone, nil

	case *parser.FunctionDeclStmt:
		e.Scp.Bind(s.Name, &objects.Function{Params: s.Params, Body: s.Body})
		return flowNone, nil

	case *parser.BlockStmt:
		for _, child := range s.Statements {
			flow, err := e.evalStatement(child)
			if err != nil {
				return nil, err
			}
			if flow.Kind == SigReturn {
				return flow, nil
			}
		}
		return flowNone, nil

	case *parser.IfStmt:
		cond, err := e.evalExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		if objects.Truthy(cond) {
			return e.evalStatement(s.Then)
		}
		if s.Else != nil {
			return e.evalStatement(s.Else)
		}
		return flowNone, nil

	case *parser.WhileStmt:
		for {
			cond, err := e.evalExpr(s.Cond)
			if err != nil {
				return nil, err
			}
			if !objects.Truthy(cond) {
				return flowNone, nil
			}
			flow, err := e.evalStatement(s.Body)
			if err != nil {
				return nil, err
			}
			if flow.Kind == SigReturn {
				return flow, nil
			}
		}

	case *parser.ReturnStmt:
		var val objects.Value = &objects.Nil{}
		if s.Value != nil {
			v, err := e.evalExpr(s.Value)
			if err != nil {
				return nil, err
			}
			val = v
		}
		return &ControlFlow{Kind: SigReturn, Value: val}, nil

	case *parser.ImportStmt:
		return flowNone, e.evalImport(s)

	default:
		return nil, diagnostics.Without(diagnostics.Semantic, "unsupported statement type %T", stmt)
	}
}

func (e *Evaluator) evalPrint(s *parser.PrintStmt) error {
	format, err := e.evalExpr(s.Format)
	if err != nil {
		return err
	}
	if len(s.Args) == 0 {
		fmt.Fprintln(e.Writer, format.ToString())
		return nil
	}
	str, ok := format.(*objects.String)
	if !ok {
		return diagnostics.Without(diagnostics.Semantic, "print with extra arguments requires a string format, got '%s'", format.GetType())
	}
	rendered := str.Value
	for _, argExpr := range s.Args {
		arg, err := e.evalExpr(argExpr)
		if err != nil {
			return err
		}
		rendered = replaceFirstPlaceholder(rendered, arg.ToString())
	}
	fmt.Fprintln(e.Writer, rendered)
	return nil
}

// replaceFirstPlaceholder replaces the first "{}" occurrence in s with
// replacement, leaving s unchanged if no placeholder remains (§4.3: excess
// args are ignored, leftover placeholders print literally).
func replaceFirstPlaceholder(s, replacement string) string {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '{' && s[i+1] == '}' {
			return s[:i] + replacement + s[i+2:]
		}
	}
	return s
}
