package sql

// ColumnInfo describes a column within its base table. Offset is the
// value's index in tuples produced by that table; within a TableInfo the
// offsets run 0..N-1 without gaps.
type ColumnInfo struct {
	Name   string
	Type   Type
	Offset int
}

// Column is the runtime, table-qualified view of a column as returned by an
// operator's Columns. Its Offset is in the producing operator's tuple-space,
// which may differ from the base table's after a join widens or a projection
// narrows the schema.
type Column struct {
	TableName string
	Name      string
	Type      Type
	Offset    int
}

// TableInfo is the schema of a relation. Operators producing synthetic
// schemas (join, projection) use ID 0 and an empty name.
type TableInfo struct {
	ID           uint64
	Name         string
	Columns      []ColumnInfo
	NextRecordID *Allocator
}

// NewTableInfo returns a TableInfo with a fresh record-id allocator.
func NewTableInfo(id uint64, name string, columns []ColumnInfo) *TableInfo {
	return &TableInfo{
		ID:           id,
		Name:         name,
		Columns:      columns,
		NextRecordID: NewAllocator(1),
	}
}

// ColumnInfoFromStr resolves a column by name within this table.
func (ti *TableInfo) ColumnInfoFromStr(name string) (ColumnInfo, error) {
	for _, ci := range ti.Columns {
		if ci.Name == name {
			return ci, nil
		}
	}
	return ColumnInfo{}, ErrColumnNotFound.New(name)
}

// RuntimeColumns returns the table's columns qualified with its name, at
// their native offsets.
func (ti *TableInfo) RuntimeColumns() []Column {
	cols := make([]Column, len(ti.Columns))
	for i, ci := range ti.Columns {
		cols[i] = Column{
			TableName: ti.Name,
			Name:      ci.Name,
			Type:      ci.Type,
			Offset:    ci.Offset,
		}
	}
	return cols
}

// ResolveColumn finds the column referenced by tableName and name among
// cols. An empty tableName matches any table; the first match wins.
func ResolveColumn(cols []Column, tableName, name string) (Column, bool) {
	for _, c := range cols {
		if c.Name != name {
			continue
		}
		if tableName != "" && c.TableName != tableName {
			continue
		}
		return c, true
	}
	return Column{}, false
}

// Allocator hands out monotonically increasing 64-bit ids.
type Allocator struct {
	base uint64
}

// NewAllocator returns an allocator whose first id will be base.
func NewAllocator(base uint64) *Allocator {
	return &Allocator{base: base}
}

// Base returns the next id to be allocated without consuming it.
func (a *Allocator) Base() uint64 {
	return a.base
}

// Next returns the next id and advances the allocator.
func (a *Allocator) Next() uint64 {
	id := a.base
	a.base++
	return id
}
