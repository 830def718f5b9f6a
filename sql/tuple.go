package sql

import "strings"

// Tuple is an ordered sequence of column values, the unit of data flow
// between operators.
type Tuple []Value

// NewTuple builds a tuple from the given values.
func NewTuple(values ...Value) Tuple {
	return Tuple(values)
}

// Len returns the number of values in the tuple.
func (t Tuple) Len() int {
	return len(t)
}

// Append returns a new tuple with other's values concatenated after t's.
// Neither input is modified.
func (t Tuple) Append(other Tuple) Tuple {
	joined := make(Tuple, 0, len(t)+len(other))
	joined = append(joined, t...)
	joined = append(joined, other...)
	return joined
}

// Project returns a new tuple holding the values at the given offsets, in
// the given order. Offsets may repeat or reorder.
func (t Tuple) Project(offsets []int) Tuple {
	projected := make(Tuple, 0, len(offsets))
	for _, o := range offsets {
		projected = append(projected, t[o])
	}
	return projected
}

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
