/*
File    : pidgin-go/eval/module.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Module loading (§4.4): resolve a dotted module path to a `.pg` file,
// parse and run it in a fresh Evaluator, then copy the requested
// exportable names into the importing evaluator's globals.
package eval

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/akashmaji946/pidgin-go/diagnostics"
	"github.com/akashmaji946/pidgin-go/objects"
	"github.com/akashmaji946/pidgin-go/parser"
)

// examplesDir is the fallback search directory when a module isn't found
// relative to the current directory, matching the retrieved loader's
// two-step resolution.
const examplesDir = "examples"

func (e *Evaluator) evalImport(s *parser.ImportStmt) error {
	path, err := e.resolveModulePath(s.Module)
	if err != nil {
		return err
	}

	for _, inProgress := range e.ImportStack {
		if inProgress == path {
			return diagnostics.Without(diagnostics.Module, "import cycle detected: '%s' is already being loaded", path)
		}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return diagnostics.Without(diagnostics.Module, "could not read module file '%s': %v", path, err)
	}

	p := parser.NewParser(string(source))
	prog := p.Parse()
	if p.HasErrors() {
		return diagnostics.Without(diagnostics.Module, "module '%s' failed to parse: %s", path, strings.Join(p.GetErrors(), "; "))
	}

	moduleEval := NewEvaluator()
	moduleEval.BaseDir = filepath.Dir(path)
	moduleEval.ImportStack = append(append([]string{}, e.ImportStack...), path)

	if err := moduleEval.interpretModule(prog); err != nil {
		return diagnostics.Without(diagnostics.Module, "module '%s' failed: %v", path, err)
	}

	for _, name := range s.Names {
		if !isExportable(name) {
			return diagnostics.Without(diagnostics.Module, "'%s' is not exportable from '%s' (must start with an uppercase letter)", name, path)
		}
		val, ok := moduleEval.Scp.LookUp(name)
		if !ok {
			return diagnostics.Without(diagnostics.Module, "module '%s' has no exported name '%s'", path, name)
		}
		e.Scp.Bind(name, objects.Clone(val))
	}
	return nil
}

// isExportable reports whether name begins with an ASCII uppercase letter.
func isExportable(name string) bool {
	if name == "" {
		return false
	}
	r := rune(name[0])
	return unicode.IsUpper(r) && r <= unicode.MaxASCII
}

// resolveModulePath appends ".pg" if absent and looks for the file in
// BaseDir (when set), then the current directory, then examples/. Dots in
// the module path stay literal dots in the filename (math.sub -> math.sub.pg).
func (e *Evaluator) resolveModulePath(module string) (string, error) {
	fileName := module
	if !strings.HasSuffix(fileName, ".pg") {
		fileName += ".pg"
	}

	candidates := []string{fileName, filepath.Join(examplesDir, fileName)}
	if e.BaseDir != "" {
		candidates = append([]string{filepath.Join(e.BaseDir, fileName)}, candidates...)
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return candidate, nil
			}
			return abs, nil
		}
	}
	return "", diagnostics.Without(diagnostics.Module, "module file '%s' not found (looked in current directory and '%s')", fileName, examplesDir)
}
