/*
File    : pidgin-go/std/regex.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"io"
	"regexp"

	"github.com/akashmaji946/pidgin-go/objects"
)

func init() {
	Builtins = append(Builtins,
		&Builtin{Name: "matchRegex", Callback: matchRegexFunc},
		&Builtin{Name: "findRegex", Callback: findRegexFunc},
		&Builtin{Name: "findAllRegex", Callback: findAllRegexFunc},
		&Builtin{Name: "replaceRegex", Callback: replaceRegexFunc},
	)
}

// matchRegexFunc reports whether str matches pattern.
// Syntax: matchRegex(pattern, str)
func matchRegexFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 2 {
		return errf("ERROR: matchRegex expects 2 arguments (pattern, str)")
	}
	matched, err := regexp.MatchString(args[0].ToString(), args[1].ToString())
	if err != nil {
		return errf("ERROR: invalid regex pattern: %v", err)
	}
	return &objects.Boolean{Value: matched}
}

// findRegexFunc returns the first match, or an empty string if none.
// Syntax: findRegex(pattern, str)
func findRegexFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 2 {
		return errf("ERROR: findRegex expects 2 arguments (pattern, str)")
	}
	re, err := regexp.Compile(args[0].ToString())
	if err != nil {
		return errf("ERROR: invalid regex pattern: %v", err)
	}
	return &objects.String{Value: re.FindString(args[1].ToString())}
}

// findAllRegexFunc returns every match as a DynamicArray of strings.
// Syntax: findAllRegex(pattern, str)
func findAllRegexFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 2 {
		return errf("ERROR: findAllRegex expects 2 arguments (pattern, str)")
	}
	re, err := regexp.Compile(args[0].ToString())
	if err != nil {
		return errf("ERROR: invalid regex pattern: %v", err)
	}
	matches := re.FindAllString(args[1].ToString(), -1)
	elems := make([]objects.Value, len(matches))
	for i, m := range matches {
		elems[i] = &objects.String{Value: m}
	}
	return &objects.DynamicArray{Elements: elems}
}

// replaceRegexFunc replaces every match of pattern in str with repl.
// Syntax: replaceRegex(pattern, str, repl)
func replaceRegexFunc(rt Runtime, writer io.Writer, args ...objects.Value) objects.Value {
	if len(args) != 3 {
		return errf("ERROR: replaceRegex expects 3 arguments (pattern, str, repl)")
	}
	re, err := regexp.Compile(args[0].ToString())
	if err != nil {
		return errf("ERROR: invalid regex pattern: %v", err)
	}
	return &objects.String{Value: re.ReplaceAllString(args[1].ToString(), args[2].ToString())}
}
