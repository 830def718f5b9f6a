package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terakoya76/rdb-sample/memory"
	"github.com/terakoya76/rdb-sample/sql"
)

// newUsersTable returns t(id:int, name:str) = {(1,"a"), (2,"b"), (3,"c")}.
func newUsersTable(t *testing.T) *memory.Table {
	t.Helper()
	require := require.New(t)

	info := sql.NewTableInfo(1, "t", []sql.ColumnInfo{
		{Name: "id", Type: sql.Int64, Offset: 0},
		{Name: "name", Type: sql.Text, Offset: 1},
	})
	table := memory.NewTable(info)
	for i, name := range []string{"a", "b", "c"} {
		require.NoError(table.Insert([]sql.Value{
			sql.NewInt64(int64(i + 1)),
			sql.NewText(name),
		}))
	}
	return table
}

// newKVTable returns name(k:int, v:str) with the given rows, inserted in
// the order given.
func newKVTable(t *testing.T, name string, keys []int64, values []string) *memory.Table {
	t.Helper()
	require := require.New(t)

	info := sql.NewTableInfo(1, name, []sql.ColumnInfo{
		{Name: "k", Type: sql.Int64, Offset: 0},
		{Name: "v", Type: sql.Text, Offset: 1},
	})
	table := memory.NewTable(info)
	for i, k := range keys {
		require.NoError(table.Insert([]sql.Value{
			sql.NewInt64(k),
			sql.NewText(values[i]),
		}))
	}
	return table
}

func fullScan(table *memory.Table) *MemoryTableScan {
	info := table.Info()
	return NewMemoryTableScan(table, info, []sql.Range{fullRange(info)})
}

func drain(t *testing.T, iter sql.ScanIterator) []sql.Tuple {
	t.Helper()
	tuples, err := sql.IterToTuples(iter)
	require.NoError(t, err)
	return tuples
}
