package sql

import "io"

// tupleIter yields a fixed slice of tuples. Used for DDL results and as a
// plain source in tests.
type tupleIter struct {
	cols   []Column
	tuples []Tuple
	pos    int
}

// TuplesToIter builds a ScanIterator over the given tuples with the given
// schema.
func TuplesToIter(cols []Column, tuples ...Tuple) ScanIterator {
	return &tupleIter{cols: cols, tuples: tuples}
}

func (i *tupleIter) Next() (Tuple, error) {
	if i.pos >= len(i.tuples) {
		return nil, io.EOF
	}
	t := i.tuples[i.pos]
	i.pos++
	return t, nil
}

func (i *tupleIter) Meta() *TableInfo {
	columns := make([]ColumnInfo, len(i.cols))
	for j, c := range i.cols {
		columns[j] = ColumnInfo{Name: c.Name, Type: c.Type, Offset: j}
	}
	return NewTableInfo(0, "", columns)
}

func (i *tupleIter) Columns() []Column {
	return i.cols
}

// IterToTuples drains iter and collects every tuple it yields.
func IterToTuples(iter ScanIterator) ([]Tuple, error) {
	var tuples []Tuple
	for {
		t, err := iter.Next()
		if err == io.EOF {
			return tuples, nil
		}
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, t)
	}
}
