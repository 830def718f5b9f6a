package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTupleAppend(t *testing.T) {
	require := require.New(t)

	left := NewTuple(NewInt64(1), NewText("a"))
	right := NewTuple(NewInt64(2))

	joined := left.Append(right)
	require.Equal(3, joined.Len())
	require.Equal(NewInt64(1), joined[0])
	require.Equal(NewText("a"), joined[1])
	require.Equal(NewInt64(2), joined[2])

	// inputs are untouched
	require.Equal(2, left.Len())
	require.Equal(1, right.Len())
}

func TestTupleAppendDoesNotAliasLeft(t *testing.T) {
	require := require.New(t)

	left := make(Tuple, 1, 4)
	left[0] = NewInt64(1)

	a := left.Append(NewTuple(NewInt64(2)))
	b := left.Append(NewTuple(NewInt64(3)))
	require.Equal(NewInt64(2), a[1])
	require.Equal(NewInt64(3), b[1])
}

func TestTupleProject(t *testing.T) {
	require := require.New(t)

	tuple := NewTuple(NewInt64(1), NewText("a"), NewInt64(3))

	projected := tuple.Project([]int{2, 0})
	require.Equal(2, projected.Len())
	require.Equal(NewInt64(3), projected[0])
	require.Equal(NewInt64(1), projected[1])

	require.Equal(0, tuple.Project(nil).Len())
}

func TestTupleString(t *testing.T) {
	require := require.New(t)

	tuple := NewTuple(NewInt64(1), NewText("a"))
	require.Equal(`(1, "a")`, tuple.String())
}
