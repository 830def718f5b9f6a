package plan

import (
	"io"

	"github.com/terakoya76/rdb-sample/sql"
)

// MemoryTableScan is the leaf operator. It emits every row of a memory
// table whose record id falls within any of the given inclusive ranges, in
// ascending record-id order. With no ranges the scan is empty.
type MemoryTableScan struct {
	meta    *sql.TableInfo
	records []sql.Record
	ranges  []sql.Range
	cursor  int
}

var _ sql.ScanIterator = (*MemoryTableScan)(nil)

// NewMemoryTableScan returns a scan over table restricted to ranges.
func NewMemoryTableScan(table sql.Table, info *sql.TableInfo, ranges []sql.Range) *MemoryTableScan {
	return &MemoryTableScan{
		meta:    info,
		records: table.Records(),
		ranges:  ranges,
	}
}

func (s *MemoryTableScan) Next() (sql.Tuple, error) {
	for s.cursor < len(s.records) {
		record := s.records[s.cursor]
		s.cursor++
		if s.inRange(record.ID) {
			return record.Tuple, nil
		}
	}
	return nil, io.EOF
}

func (s *MemoryTableScan) inRange(id uint64) bool {
	for _, r := range s.ranges {
		if r.Contains(id) {
			return true
		}
	}
	return false
}

func (s *MemoryTableScan) Meta() *sql.TableInfo {
	return s.meta
}

// Columns returns the base table's columns at their native offsets.
func (s *MemoryTableScan) Columns() []sql.Column {
	return s.meta.RuntimeColumns()
}
