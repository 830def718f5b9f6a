package plan

import (
	"github.com/terakoya76/rdb-sample/sql"
	"github.com/terakoya76/rdb-sample/sql/parse"
)

// SelectorKind is the comparison a selector applies.
type SelectorKind byte

const (
	Equal SelectorKind = iota
	NotEqual
	GT
	LT
	GE
	LE
)

func (k SelectorKind) String() string {
	switch k {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case GT:
		return ">"
	case LT:
		return "<"
	case GE:
		return ">="
	case LE:
		return "<="
	default:
		return "?"
	}
}

// Selector is a compiled comparison predicate over a tuple. Left names the
// column holding the left operand; the right operand is either another
// value of the same tuple (RightOffset, in the evaluating operator's
// tuple-space) or a literal (RightLiteral). Exactly one of the two is set.
type Selector struct {
	Kind         SelectorKind
	Left         parse.Target
	RightOffset  *int
	RightLiteral *sql.Value
}

// NewOffsetSelector returns a selector comparing the left column against
// the value at the given tuple offset.
func NewOffsetSelector(kind SelectorKind, left parse.Target, offset int) *Selector {
	return &Selector{Kind: kind, Left: left, RightOffset: &offset}
}

// NewLiteralSelector returns a selector comparing the left column against a
// literal.
func NewLiteralSelector(kind SelectorKind, left parse.Target, lit sql.Value) *Selector {
	return &Selector{Kind: kind, Left: left, RightLiteral: &lit}
}

// IsTrue reports whether the comparison holds for the tuple under the given
// columns. An unresolvable left column, an out-of-bounds offset, or a dtype
// mismatch between the operands makes the predicate not hold; none of these
// are errors.
func (s *Selector) IsTrue(tuple sql.Tuple, cols []sql.Column) bool {
	col, ok := sql.ResolveColumn(cols, s.Left.TableName, s.Left.Name)
	if !ok || col.Offset < 0 || col.Offset >= tuple.Len() {
		return false
	}
	left := tuple[col.Offset]

	var right sql.Value
	switch {
	case s.RightOffset != nil:
		if *s.RightOffset < 0 || *s.RightOffset >= tuple.Len() {
			return false
		}
		right = tuple[*s.RightOffset]
	case s.RightLiteral != nil:
		right = *s.RightLiteral
	default:
		return false
	}

	cmp, ok := left.Compare(right)
	if !ok {
		return false
	}

	switch s.Kind {
	case Equal:
		return cmp == 0
	case NotEqual:
		return cmp != 0
	case GT:
		return cmp > 0
	case LT:
		return cmp < 0
	case GE:
		return cmp >= 0
	case LE:
		return cmp <= 0
	default:
		return false
	}
}
