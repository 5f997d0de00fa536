/*
File    : pidgin-go/std/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins, &Builtin{Name: "readline", Callback: readlineFunc})
	Builtins = append(Builtins, &Builtin{Name: "printErr", Callback: printErrFunc})
}

// readlineFunc writes the prompt "Enter input: " to stdout and reads one
// line from the runtime's input reader, trimming a trailing CR/LF.
func readlineFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 0 {
		return errf("ERROR: readline expects 0 arguments, got %d", len(args))
	}
	fmt.Fprint(writer, "Enter input: ")
	line, err := rt.GetInputReader().ReadString('\n')
	if err != nil && line == "" {
		return errf("ERROR: readline failed: %v", err)
	}
	line = strings.TrimRight(line, "\r\n")
	return &objects.String{Value: line}
}

// printErrFunc writes v's stringification to standard error with a
// trailing newline, independent of the evaluator's configured stdout
// writer (§4.8/§6: printErr always targets the process's stderr stream).
func printErrFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: printErr expects 1 argument, got %d", len(args))
	}
	fmt.Fprintln(os.Stderr, args[0].ToString())
	return &objects.Nil{}
}
