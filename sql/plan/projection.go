package plan

import (
	"io"

	"github.com/terakoya76/rdb-sample/sql"
	"github.com/terakoya76/rdb-sample/sql/parse"
)

// Projection narrows its child's tuples to the target columns, in declared
// order. Targets are resolved against the child's columns when the operator
// is built, so an unknown column fails before any tuple is pulled. A single
// "*" target selects every child column.
type Projection struct {
	child   sql.ScanIterator
	offsets []int
	cols    []sql.Column
	meta    *sql.TableInfo
	done    bool
}

var _ sql.ScanIterator = (*Projection)(nil)

// NewProjection resolves targets against child's columns and wraps child.
func NewProjection(child sql.ScanIterator, targets []parse.Target) (*Projection, error) {
	childCols := child.Columns()

	if len(targets) == 1 && targets[0].Name == "*" {
		targets = make([]parse.Target, len(childCols))
		for i, c := range childCols {
			targets[i] = parse.Target{TableName: c.TableName, Name: c.Name}
		}
	}

	offsets := make([]int, 0, len(targets))
	cols := make([]sql.Column, 0, len(targets))
	columns := make([]sql.ColumnInfo, 0, len(targets))
	for i, target := range targets {
		col, ok := sql.ResolveColumn(childCols, target.TableName, target.Name)
		if !ok {
			return nil, sql.ErrColumnNotFound.New(qualifiedName(target.TableName, target.Name))
		}
		offsets = append(offsets, col.Offset)
		cols = append(cols, sql.Column{
			TableName: col.TableName,
			Name:      col.Name,
			Type:      col.Type,
			Offset:    i,
		})
		columns = append(columns, sql.ColumnInfo{
			Name:   col.Name,
			Type:   col.Type,
			Offset: i,
		})
	}

	return &Projection{
		child:   child,
		offsets: offsets,
		cols:    cols,
		meta:    sql.NewTableInfo(0, "", columns),
	}, nil
}

func (p *Projection) Next() (sql.Tuple, error) {
	if p.done {
		return nil, io.EOF
	}

	tuple, err := p.child.Next()
	if err != nil {
		p.done = true
		return nil, err
	}
	return tuple.Project(p.offsets), nil
}

func (p *Projection) Meta() *sql.TableInfo {
	return p.meta
}

// Columns returns the projected columns renumbered 0..K-1.
func (p *Projection) Columns() []sql.Column {
	return p.cols
}
