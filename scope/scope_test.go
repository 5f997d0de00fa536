/*
File    : pidgin-go/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package scope

import (
	"testing"

	"github.com/akashmaji946/pidgin-go/objects"
	"github.com/stretchr/testify/require"
)

func TestBindAndLookUp(t *testing.T) {
	s := NewScope()
	_, ok := s.LookUp("x")
	require.False(t, ok)

	s.Bind("x", &objects.Number{Value: 5})
	v, ok := s.LookUp("x")
	require.True(t, ok)
	require.Equal(t, 5.0, v.(*objects.Number).Value)
}

func TestAssignReportsPreexistence(t *testing.T) {
	s := NewScope()
	require.False(t, s.Assign("x", &objects.Number{Value: 1}))
	require.True(t, s.Assign("x", &objects.Number{Value: 2}))
}

func TestSnapshotRestoreIsolatesMutation(t *testing.T) {
	s := NewScope()
	s.Bind("x", &objects.Number{Value: 1})
	snap := s.Snapshot()

	s.Bind("x", &objects.Number{Value: 99})
	s.Bind("y", &objects.Number{Value: 2})

	s.Restore(snap)
	v, ok := s.LookUp("x")
	require.True(t, ok)
	require.Equal(t, 1.0, v.(*objects.Number).Value)
	_, ok = s.LookUp("y")
	require.False(t, ok)
}
