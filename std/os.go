/*
File    : pidgin-go/std/os.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Read-only process/environment info builtins. Stateful process-spawning
// builtins (exec, setenv) from the retrieved builtin corpus are dropped —
// see DESIGN.md — since nothing in this interpreter's scope needs to
// shell out or mutate its own environment.
package std

import (
	"io"
	"os"
	"os/user"
	"runtime"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins,
		&Builtin{Name: "osName", Callback: osNameFunc},
		&Builtin{Name: "numCPU", Callback: numCPUFunc},
		&Builtin{Name: "currentUser", Callback: currentUserFunc},
		&Builtin{Name: "envVar", Callback: envVarFunc},
	)
}

func osNameFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 0 {
		return errf("ERROR: osName expects 0 arguments, got %d", len(args))
	}
	return &objects.String{Value: runtime.GOOS}
}

func numCPUFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 0 {
		return errf("ERROR: numCPU expects 0 arguments, got %d", len(args))
	}
	return &objects.Number{Value: float64(runtime.NumCPU())}
}

func currentUserFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 0 {
		return errf("ERROR: currentUser expects 0 arguments, got %d", len(args))
	}
	u, err := user.Current()
	if err != nil {
		return errf("ERROR: could not determine current user: %v", err)
	}
	return &objects.String{Value: u.Username}
}

func envVarFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: envVar expects 1 argument (name)")
	}
	return &objects.String{Value: os.Getenv(args[0].ToString())}
}
