package plan

import (
	"io"

	"github.com/terakoya76/rdb-sample/sql"
	"github.com/terakoya76/rdb-sample/sql/parse"
)

// NestedLoopJoin concatenates each outer tuple with every inner tuple,
// outer-major. Its schema is the outer columns followed by the inner
// columns with their offsets shifted past the outer width. The inner stream
// is materialized into a buffer when the first outer tuple arrives, so each
// outer tuple sees the full inner relation regardless of whether the inner
// operator can restart. An optional ON comparison filters joined tuples
// before emission.
type NestedLoopJoin struct {
	outer sql.ScanIterator
	inner sql.ScanIterator

	meta      *sql.TableInfo
	cols      []sql.Column
	selectors []*Selector

	outerTuple  sql.Tuple
	innerBuf    []sql.Tuple
	innerLoaded bool
	innerPos    int
	done        bool
}

var _ sql.ScanIterator = (*NestedLoopJoin)(nil)

// NewNestedLoopJoin composes outer and inner under an optional ON
// comparison, which is compiled against the merged schema.
func NewNestedLoopJoin(outer, inner sql.ScanIterator, condition *parse.Condition) (*NestedLoopJoin, error) {
	outerCols := outer.Columns()
	innerCols := inner.Columns()

	cols := make([]sql.Column, 0, len(outerCols)+len(innerCols))
	cols = append(cols, outerCols...)
	for _, c := range innerCols {
		c.Offset += len(outerCols)
		cols = append(cols, c)
	}

	columns := make([]sql.ColumnInfo, len(cols))
	for i, c := range cols {
		columns[i] = sql.ColumnInfo{Name: c.Name, Type: c.Type, Offset: i}
	}

	var selectors []*Selector
	if condition != nil {
		var err error
		selectors, err = CompileJoinOn(*condition, cols)
		if err != nil {
			return nil, err
		}
	}

	return &NestedLoopJoin{
		outer:     outer,
		inner:     inner,
		meta:      sql.NewTableInfo(0, "", columns),
		cols:      cols,
		selectors: selectors,
	}, nil
}

func (j *NestedLoopJoin) Next() (sql.Tuple, error) {
	if j.done {
		return nil, io.EOF
	}

	for {
		if j.outerTuple == nil {
			tuple, err := j.outer.Next()
			if err == io.EOF {
				j.done = true
				return nil, io.EOF
			}
			if err != nil {
				j.done = true
				return nil, err
			}
			j.outerTuple = tuple
			j.innerPos = 0

			if !j.innerLoaded {
				if err := j.loadInner(); err != nil {
					j.done = true
					return nil, err
				}
			}
		}

		if j.innerPos >= len(j.innerBuf) {
			j.outerTuple = nil
			continue
		}

		joined := j.outerTuple.Append(j.innerBuf[j.innerPos])
		j.innerPos++

		if j.passes(joined) {
			return joined, nil
		}
	}
}

func (j *NestedLoopJoin) loadInner() error {
	for {
		tuple, err := j.inner.Next()
		if err == io.EOF {
			j.innerLoaded = true
			return nil
		}
		if err != nil {
			return err
		}
		j.innerBuf = append(j.innerBuf, tuple)
	}
}

func (j *NestedLoopJoin) passes(tuple sql.Tuple) bool {
	for _, s := range j.selectors {
		if !s.IsTrue(tuple, j.cols) {
			return false
		}
	}
	return true
}

func (j *NestedLoopJoin) Meta() *sql.TableInfo {
	return j.meta
}

func (j *NestedLoopJoin) Columns() []sql.Column {
	return j.cols
}
