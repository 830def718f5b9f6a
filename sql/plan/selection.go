package plan

import (
	"io"

	"github.com/terakoya76/rdb-sample/sql"
)

// Selection passes through the tuples of its child for which every selector
// holds. An empty selector list is the identity. Order is preserved.
type Selection struct {
	child     sql.ScanIterator
	selectors []*Selector
	cols      []sql.Column
	done      bool
}

var _ sql.ScanIterator = (*Selection)(nil)

// NewSelection wraps child with the given selectors.
func NewSelection(child sql.ScanIterator, selectors []*Selector) *Selection {
	return &Selection{
		child:     child,
		selectors: selectors,
		cols:      child.Columns(),
	}
}

func (s *Selection) Next() (sql.Tuple, error) {
	if s.done {
		return nil, io.EOF
	}

	for {
		tuple, err := s.child.Next()
		if err == io.EOF {
			s.done = true
			return nil, io.EOF
		}
		if err != nil {
			s.done = true
			return nil, err
		}

		passed := true
		for _, selector := range s.selectors {
			if !selector.IsTrue(tuple, s.cols) {
				passed = false
				break
			}
		}
		if passed {
			return tuple, nil
		}
	}
}

func (s *Selection) Meta() *sql.TableInfo {
	return s.child.Meta()
}

func (s *Selection) Columns() []sql.Column {
	return s.cols
}
