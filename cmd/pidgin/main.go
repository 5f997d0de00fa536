/*
File    : pidgin-go/cmd/pidgin/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Pidgin interpreter. It provides
two modes of operation:
 1. REPL mode (default, no file argument): interactive line-by-line
    evaluation.
 2. File mode (a source path is given): execute the file start to finish.
Both modes share the same lexer -> parser -> evaluator pipeline; --dump-
tokens/--dump-ast short-circuit before evaluation for debugging.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/pidgin-go/eval"
	"github.com/akashmaji946/pidgin-go/lexer"
	"github.com/akashmaji946/pidgin-go/parser"
	"github.com/akashmaji946/pidgin-go/repl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VERSION is the current interpreter version.
var VERSION = "v1.0.0"

// AUTHOR is the interpreter's contact information.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE is the software license.
var LICENSE = "MIT"

// PROMPT is shown at each REPL line.
var PROMPT = "pidgin >>> "

// BANNER is the ASCII logo shown at REPL startup.
var BANNER = `
 ____  _     _       _
|  _ \(_) __| | __ _(_)_ __
| |_) | |/ _' |/ _' | | '_ \
|  __/| | (_| | (_| | | | | |
|_|   |_|\__,_|\__, |_|_| |_|
               |___/
`

// LINE is a separator used in REPL and help output.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

var (
	dumpTokens bool
	dumpAST    bool
)

func main() {
	root := &cobra.Command{
		Use:     "pidgin [file]",
		Short:   "Pidgin - a small dynamically-typed scripting language",
		Version: VERSION,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
				repler.Start(os.Stdin, os.Stdout)
				return nil
			}
			return runFile(args[0])
		},
	}

	root.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream instead of executing")
	root.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST instead of executing")

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// runFile reads and executes a Pidgin source file, or dumps its tokens or
// AST instead when the corresponding flag was set.
func runFile(fileName string) error {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", fileName, err)
	}
	source := string(content)

	if dumpTokens {
		return runDumpTokens(source)
	}
	if dumpAST {
		return runDumpAST(source)
	}

	p := parser.NewParser(source)
	prog := p.Parse()
	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	if err := evaluator.Interpret(prog); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
	return nil
}

func runDumpTokens(source string) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		cyanColor.Println(tok.String())
	}
	return nil
}

func runDumpAST(source string) error {
	p := parser.NewParser(source)
	prog := p.Parse()
	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		os.Exit(1)
	}
	yellowColor.Println(DumpProgram(prog))
	return nil
}
