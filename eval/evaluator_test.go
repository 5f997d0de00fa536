/*
File    : pidgin-go/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/pidgin-go/parser"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	var out bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&out)
	err := ev.Interpret(prog)
	require.NoError(t, err)
	return out.String()
}

func runExpectError(t *testing.T, src string) error {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	ev := NewEvaluator()
	ev.SetWriter(&bytes.Buffer{})
	return ev.Interpret(prog)
}

func TestScenario1_ArithmeticAssignmentAndPrint(t *testing.T) {
	require.Equal(t, "3\n", run(t, `let x = 1 + 2; print x;`))
}

func TestScenario2_StringNumberConcatenation(t *testing.T) {
	require.Equal(t, "hi7\n", run(t, `let s = "hi" + 7; print s;`))
}

func TestScenario3_RecursiveFunction(t *testing.T) {
	src := `function f(n){ if (n==0){ return 1; } return n * f(n-1); } print f(5);`
	require.Equal(t, "120\n", run(t, src))
}

func TestScenario4_DynamicArrayPush(t *testing.T) {
	src := `let a = {1,2,3}; a = a.push(4); print a.length();`
	require.Equal(t, "4\n", run(t, src))
}

func TestScenario5_ObjectSetGetHas(t *testing.T) {
	src := `let o = Object(); o = o.set("k", 10); print o.get("k"); print o.has("x");`
	require.Equal(t, "10\nfalse\n", run(t, src))
}

func TestScenario6_ReplaceChar(t *testing.T) {
	src := "let s = \"a,b,c\"; print s.replaceChar(`, -> ;`);"
	require.Equal(t, "a;b;c\n", run(t, src))
}

func TestEmptySourceInterpretsToNoOutput(t *testing.T) {
	require.Equal(t, "", run(t, ``))
}

func TestPopOnEmptyArrayFails(t *testing.T) {
	err := runExpectError(t, `let a = {}; print a.pop();`)
	require.Error(t, err)
}

func TestIndexAtLengthFailsAtLengthMinusOneSucceeds(t *testing.T) {
	require.Equal(t, "3\n", run(t, `let a = [1,2,3]; print a[2];`))
	err := runExpectError(t, `let a = [1,2,3]; print a[3];`)
	require.Error(t, err)
}

func TestDivisionByZeroFails(t *testing.T) {
	err := runExpectError(t, `print 1 / 0;`)
	require.Error(t, err)
}

func TestFunctionCallDoesNotLeakParameterBindings(t *testing.T) {
	src := `let x = 10; function f(x){ x = x + 1; return x; } print f(x); print x;`
	require.Equal(t, "11\n10\n", run(t, src))
}

func TestPushThenPopReturnsPushedValueAndLeavesLengthUnchanged(t *testing.T) {
	src := `let a = {1,2}; let b = a.push(3); print b.pop(); print b.length(); print a.length();`
	require.Equal(t, "3\n3\n2\n", run(t, src))
}

func TestTruthiness(t *testing.T) {
	require.Equal(t, "true\n", run(t, `if (0 == 0) { print "true"; } else { print "false"; }`))
	require.Equal(t, "false\n", run(t, `let n; if (n) { print "true"; } else { print "false"; }`))
}

func TestPrintPlaceholderSubstitution(t *testing.T) {
	require.Equal(t, "a is 1 and b is 2\n", run(t, `print "a is {} and b is {}", 1, 2;`))
	require.Equal(t, "only 1 consumed {}\n", run(t, `print "only {} consumed {}", 1;`))
}

func TestWhileLoop(t *testing.T) {
	src := `let i = 0; let sum = 0; while (i < 5) { sum = sum + i; i = i + 1; } print sum;`
	require.Equal(t, "10\n", run(t, src))
}

func TestUndefinedVariableFails(t *testing.T) {
	err := runExpectError(t, `print missing;`)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "undefined variable"))
}

func TestReturnOutsideFunctionFails(t *testing.T) {
	err := runExpectError(t, `return 1;`)
	require.Error(t, err)
}

func TestEqualityAcrossArrayKinds(t *testing.T) {
	require.Equal(t, "false\n", run(t, `print [1,2] == {1,2};`))
	require.Equal(t, "true\n", run(t, `print [1,2] == [1,2];`))
}
