package memory

import (
	"fmt"
	"strings"

	"github.com/terakoya76/rdb-sample/sql"
)

// Table is an append-only in-memory table. Records are kept in insertion
// order, which is also ascending record-id order since ids come from the
// table's monotonic allocator.
type Table struct {
	info    *sql.TableInfo
	records []sql.Record
}

var _ sql.Table = (*Table)(nil)

// NewTable returns an empty table with the given schema.
func NewTable(info *sql.TableInfo) *Table {
	return &Table{info: info}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.info.Name
}

// Info returns the table schema.
func (t *Table) Info() *sql.TableInfo {
	return t.info
}

// Records returns the stored records in ascending record-id order.
func (t *Table) Records() []sql.Record {
	return t.records
}

// Insert coerces values to the column dtypes, allocates a record id, and
// appends the record.
func (t *Table) Insert(values []sql.Value) error {
	if len(values) != len(t.info.Columns) {
		return sql.ErrInsertArity.New(t.info.Name, len(t.info.Columns), len(values))
	}

	tuple := make(sql.Tuple, len(values))
	for i, v := range values {
		coerced, err := sql.NewValue(t.info.Columns[i].Type, v.Data)
		if err != nil {
			return err
		}
		tuple[i] = coerced
	}

	t.records = append(t.records, sql.Record{
		ID:    t.info.NextRecordID.Next(),
		Tuple: tuple,
	})
	return nil
}

func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Table(%s)\n", t.info.Name)
	for i, ci := range t.info.Columns {
		branch := "├─"
		if i == len(t.info.Columns)-1 {
			branch = "└─"
		}
		fmt.Fprintf(&sb, " %s Column(%s, %s)\n", branch, ci.Name, ci.Type)
	}
	return sb.String()
}
