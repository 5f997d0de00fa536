/*
File    : pidgin-go/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package objects

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruthiness(t *testing.T) {
	require.False(t, Truthy(&Boolean{Value: false}))
	require.False(t, Truthy(&Nil{}))
	require.True(t, Truthy(&Number{Value: 0}))
	require.True(t, Truthy(&String{Value: ""}))
	require.True(t, Truthy(&FixedArray{}))
	require.True(t, Truthy(NewObject()))
}

func TestEqual_SameKindByValue(t *testing.T) {
	require.True(t, Equal(&Number{Value: 1}, &Number{Value: 1}))
	require.False(t, Equal(&Number{Value: 1}, &Number{Value: 2}))
	require.True(t, Equal(&String{Value: "a"}, &String{Value: "a"}))
	require.True(t, Equal(&Nil{}, &Nil{}))
}

func TestEqual_AcrossKindsIsFalse(t *testing.T) {
	require.False(t, Equal(&Number{Value: 1}, &String{Value: "1"}))
	require.False(t, Equal(&FixedArray{Elements: []Value{&Number{Value: 1}}}, &DynamicArray{Elements: []Value{&Number{Value: 1}}}))
}

func TestEqual_ArraysRecurse(t *testing.T) {
	a := &DynamicArray{Elements: []Value{&Number{Value: 1}, &String{Value: "x"}}}
	b := &DynamicArray{Elements: []Value{&Number{Value: 1}, &String{Value: "x"}}}
	require.True(t, Equal(a, b))
}

func TestClone_DeepCopiesContainers(t *testing.T) {
	original := &DynamicArray{Elements: []Value{&Number{Value: 1}}}
	cloned := Clone(original).(*DynamicArray)
	cloned.Elements[0] = &Number{Value: 99}
	require.Equal(t, 1.0, original.Elements[0].(*Number).Value)
}

func TestNumber_ToStringDropsTrailingZero(t *testing.T) {
	require.Equal(t, "3", (&Number{Value: 3}).ToString())
	require.Equal(t, "3.5", (&Number{Value: 3.5}).ToString())
}
