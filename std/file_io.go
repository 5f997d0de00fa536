/*
File    : pidgin-go/std/file_io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// File system builtins. Every function here is stateless (a single
// syscall per call, no open handle survives past the call) so that
// nothing in this package needs a runtime value kind beyond the core
// Number/String/Boolean/Nil set — see SPEC_FULL.md §4.9.
package std

import (
	"io"
	"os"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins,
		&Builtin{Name: "readFile", Callback: readFileFunc},
		&Builtin{Name: "writeFile", Callback: writeFileFunc},
		&Builtin{Name: "appendFile", Callback: appendFileFunc},
		&Builtin{Name: "fileExists", Callback: fileExistsFunc},
		&Builtin{Name: "isDir", Callback: isDirFunc},
		&Builtin{Name: "isFile", Callback: isFileFunc},
		&Builtin{Name: "mkdir", Callback: mkdirFunc},
		&Builtin{Name: "listDir", Callback: listDirFunc},
		&Builtin{Name: "pwd", Callback: pwdFunc},
		&Builtin{Name: "home", Callback: homeFunc},
		&Builtin{Name: "removeFile", Callback: removeFileFunc},
		&Builtin{Name: "renameFile", Callback: renameFileFunc},
		&Builtin{Name: "touchFile", Callback: touchFileFunc},
	)
}

// readFileFunc reads an entire file into a String.
// Syntax: readFile(path)
func readFileFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: readFile expects 1 argument (path)")
	}
	path := args[0].ToString()
	content, err := os.ReadFile(path)
	if err != nil {
		return errf("ERROR: could not read file '%s': %v", path, err)
	}
	return &objects.String{Value: string(content)}
}

// writeFileFunc writes content to path, creating or truncating it.
// Syntax: writeFile(path, content)
func writeFileFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 2 {
		return errf("ERROR: writeFile expects 2 arguments (path, content)")
	}
	path := args[0].ToString()
	if err := os.WriteFile(path, []byte(args[1].ToString()), 0644); err != nil {
		return errf("ERROR: could not write file '%s': %v", path, err)
	}
	return &objects.Nil{}
}

// appendFileFunc appends content to path, creating it if absent.
// Syntax: appendFile(path, content)
func appendFileFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 2 {
		return errf("ERROR: appendFile expects 2 arguments (path, content)")
	}
	path := args[0].ToString()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errf("ERROR: could not open file '%s' for append: %v", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(args[1].ToString()); err != nil {
		return errf("ERROR: could not append to file '%s': %v", path, err)
	}
	return &objects.Nil{}
}

// fileExistsFunc reports whether path exists at all (file or directory).
func fileExistsFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: fileExists expects 1 argument (path)")
	}
	_, err := os.Stat(args[0].ToString())
	return &objects.Boolean{Value: err == nil}
}

// isDirFunc reports whether path exists and is a directory.
func isDirFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: isDir expects 1 argument (path)")
	}
	info, err := os.Stat(args[0].ToString())
	return &objects.Boolean{Value: err == nil && info.IsDir()}
}

// isFileFunc reports whether path exists and is a regular file.
func isFileFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: isFile expects 1 argument (path)")
	}
	info, err := os.Stat(args[0].ToString())
	return &objects.Boolean{Value: err == nil && info.Mode().IsRegular()}
}

// mkdirFunc creates path and any missing parents.
func mkdirFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: mkdir expects 1 argument (path)")
	}
	path := args[0].ToString()
	if err := os.MkdirAll(path, 0755); err != nil {
		return errf("ERROR: could not create directory '%s': %v", path, err)
	}
	return &objects.Nil{}
}

// listDirFunc returns a DynamicArray of entry names within path.
func listDirFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: listDir expects 1 argument (path)")
	}
	path := args[0].ToString()
	entries, err := os.ReadDir(path)
	if err != nil {
		return errf("ERROR: could not list directory '%s': %v", path, err)
	}
	elems := make([]objects.Value, len(entries))
	for i, e := range entries {
		elems[i] = &objects.String{Value: e.Name()}
	}
	return &objects.DynamicArray{Elements: elems}
}

// pwdFunc returns the process's current working directory.
func pwdFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 0 {
		return errf("ERROR: pwd expects 0 arguments, got %d", len(args))
	}
	wd, err := os.Getwd()
	if err != nil {
		return errf("ERROR: could not determine working directory: %v", err)
	}
	return &objects.String{Value: wd}
}

// homeFunc returns the invoking user's home directory.
func homeFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 0 {
		return errf("ERROR: home expects 0 arguments, got %d", len(args))
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return errf("ERROR: could not determine home directory: %v", err)
	}
	return &objects.String{Value: dir}
}

// removeFileFunc removes a single file (not a non-empty directory).
func removeFileFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: removeFile expects 1 argument (path)")
	}
	path := args[0].ToString()
	if err := os.Remove(path); err != nil {
		return errf("ERROR: could not remove '%s': %v", path, err)
	}
	return &objects.Nil{}
}

// renameFileFunc moves/renames oldPath to newPath.
func renameFileFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 2 {
		return errf("ERROR: renameFile expects 2 arguments (oldPath, newPath)")
	}
	oldPath, newPath := args[0].ToString(), args[1].ToString()
	if err := os.Rename(oldPath, newPath); err != nil {
		return errf("ERROR: could not rename '%s' to '%s': %v", oldPath, newPath, err)
	}
	return &objects.Nil{}
}

// touchFileFunc creates an empty file if path does not already exist.
func touchFileFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 1 {
		return errf("ERROR: touchFile expects 1 argument (path)")
	}
	path := args[0].ToString()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return errf("ERROR: could not touch '%s': %v", path, err)
	}
	f.Close()
	return &objects.Nil{}
}
