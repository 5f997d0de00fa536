/*
File    : pidgin-go/std/std_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package std

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/pidgin-go/objects"
	"github.com/stretchr/testify/require"
)

type fakeRuntime struct{ reader *bufio.Reader }

func (f *fakeRuntime) GetInputReader() *bufio.Reader { return f.reader }

func lookup(t *testing.T, name string) *Builtin {
	t.Helper()
	for _, b := range Builtins {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("builtin %q not registered", name)
	return nil
}

func TestReadline_TrimsNewline(t *testing.T) {
	rt := &fakeRuntime{reader: bufio.NewReader(strings.NewReader("hello\n"))}
	var out bytes.Buffer
	result := lookup(t, "readline").Callback(rt, &out)
	s, ok := result.(*objects.String)
	require.True(t, ok)
	require.Equal(t, "hello", s.Value)
	require.Contains(t, out.String(), "Enter input:")
}

func TestDate_DateOnlyStringForm(t *testing.T) {
	rt := &fakeRuntime{}
	d := lookup(t, "Date").Callback(rt, nil, &objects.String{Value: "2024-01-02"})
	date, ok := d.(*objects.Date)
	require.True(t, ok)
	require.Equal(t, 2024, date.Value.Year())
	require.Equal(t, 2, date.Value.Day())
}

func TestDate_YearMonthDayForm(t *testing.T) {
	rt := &fakeRuntime{}
	d := lookup(t, "Date").Callback(rt, nil,
		&objects.Number{Value: 2023}, &objects.Number{Value: 6}, &objects.Number{Value: 15})
	date, ok := d.(*objects.Date)
	require.True(t, ok)
	require.Equal(t, 2023, date.Value.Year())
	require.Equal(t, 6, int(date.Value.Month()))
}

func TestObject_ReturnsEmptyObject(t *testing.T) {
	rt := &fakeRuntime{}
	o := lookup(t, "Object").Callback(rt, nil)
	obj, ok := o.(*objects.Object)
	require.True(t, ok)
	require.Empty(t, obj.Pairs)
}

func TestJSON_RoundTrip(t *testing.T) {
	rt := &fakeRuntime{}
	obj := objects.NewObject()
	obj.Pairs["k"] = &objects.Number{Value: 10}
	encoded := lookup(t, "stringifyJSON").Callback(rt, nil, obj)
	s, ok := encoded.(*objects.String)
	require.True(t, ok)

	decoded := lookup(t, "parseJSON").Callback(rt, nil, s)
	back, ok := decoded.(*objects.Object)
	require.True(t, ok)
	n, ok := back.Pairs["k"].(*objects.Number)
	require.True(t, ok)
	require.Equal(t, 10.0, n.Value)
}

func TestMathBuiltins(t *testing.T) {
	rt := &fakeRuntime{}
	require.Equal(t, 3.0, lookup(t, "sqrtOf").Callback(rt, nil, &objects.Number{Value: 9}).(*objects.Number).Value)
	require.Equal(t, 8.0, lookup(t, "powOf").Callback(rt, nil, &objects.Number{Value: 2}, &objects.Number{Value: 3}).(*objects.Number).Value)
	require.True(t, objects.IsError(lookup(t, "sqrtOf").Callback(rt, nil, &objects.Number{Value: -1})))
}

func TestFileIO_WriteThenRead(t *testing.T) {
	rt := &fakeRuntime{}
	dir := t.TempDir()
	path := dir + "/out.txt"
	w := lookup(t, "writeFile").Callback(rt, nil, &objects.String{Value: path}, &objects.String{Value: "hi"})
	require.False(t, objects.IsError(w))
	r := lookup(t, "readFile").Callback(rt, nil, &objects.String{Value: path})
	s, ok := r.(*objects.String)
	require.True(t, ok)
	require.Equal(t, "hi", s.Value)
}

func TestFileIO_MissingFileIsError(t *testing.T) {
	rt := &fakeRuntime{}
	r := lookup(t, "readFile").Callback(rt, nil, &objects.String{Value: "/does/not/exist"})
	require.True(t, objects.IsError(r))
}
