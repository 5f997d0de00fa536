/*
File    : pidgin-go/eval/module_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akashmaji946/pidgin-go/parser"
	"github.com/stretchr/testify/require"
)

func runInDir(t *testing.T, dir, src string) string {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	var out bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&out)
	ev.BaseDir = dir
	err := ev.Interpret(prog)
	require.NoError(t, err, out.String())
	return out.String()
}

func writeModule(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestImport_SingleNameAndBracedList(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "math.pg", `let Pi = 3; function Square(n) { return n * n; } let hidden = 1;`)

	out := runInDir(t, dir, `get Pi from math; print Pi;`)
	require.Equal(t, "3\n", out)

	out = runInDir(t, dir, `get {Pi, Square} from math; print Pi; print Square(4);`)
	require.Equal(t, "3\n16\n", out)
}

func TestImport_LowercaseNameIsRejected(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "math.pg", `let hidden = 1;`)

	p := parser.NewParser(`get hidden from math;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	ev := NewEvaluator()
	ev.BaseDir = dir
	ev.SetWriter(&bytes.Buffer{})
	err := ev.Interpret(prog)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "not exportable"))
}

func TestImport_DottedModulePathIsLiteralFilename(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "math.sub.pg", `let Value = 42;`)

	out := runInDir(t, dir, `get Value from math.sub; print Value;`)
	require.Equal(t, "42\n", out)
}

func TestImport_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	p := parser.NewParser(`get Name from nowhere;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	ev := NewEvaluator()
	ev.BaseDir = dir
	ev.SetWriter(&bytes.Buffer{})
	err := ev.Interpret(prog)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "not found"))
}

func TestImport_CycleIsRejected(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.pg", `get X from b;`)
	writeModule(t, dir, "b.pg", `get X from a;`)

	p := parser.NewParser(`get X from a;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	ev := NewEvaluator()
	ev.BaseDir = dir
	ev.SetWriter(&bytes.Buffer{})
	err := ev.Interpret(prog)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "cycle"))
}
