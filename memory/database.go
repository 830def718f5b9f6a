package memory

import (
	"github.com/terakoya76/rdb-sample/sql"
)

// Database is an in-memory catalog of tables.
type Database struct {
	name     string
	tables   map[string]*Table
	tableIDs *sql.Allocator
}

var _ sql.Database = (*Database)(nil)

// NewDatabase returns an empty database.
func NewDatabase(name string) *Database {
	return &Database{
		name:     name,
		tables:   map[string]*Table{},
		tableIDs: sql.NewAllocator(1),
	}
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.name
}

// Tables returns every table keyed by name.
func (d *Database) Tables() map[string]*Table {
	return d.tables
}

// CreateTable registers a new table with the given columns, allocating its
// table id.
func (d *Database) CreateTable(name string, columns []sql.ColumnInfo) (*Table, error) {
	if _, ok := d.tables[name]; ok {
		return nil, sql.ErrBuildExecutor.New("table " + name + " already exists")
	}

	info := sql.NewTableInfo(d.tableIDs.Next(), name, columns)
	table := NewTable(info)
	d.tables[name] = table
	return table, nil
}

// AddTable registers an existing table under its own name.
func (d *Database) AddTable(table *Table) {
	d.tables[table.Name()] = table
}

// LoadTable returns the table with the given name.
func (d *Database) LoadTable(name string) (sql.Table, error) {
	table, ok := d.tables[name]
	if !ok {
		return nil, sql.ErrTableNotFound.New(name)
	}
	return table, nil
}

// LoadTables returns the tables with the given names, in order.
func (d *Database) LoadTables(names []string) ([]sql.Table, error) {
	tables := make([]sql.Table, 0, len(names))
	for _, name := range names {
		table, err := d.LoadTable(name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// InsertInto appends a row to the named table.
func (d *Database) InsertInto(name string, values []sql.Value) error {
	table, ok := d.tables[name]
	if !ok {
		return sql.ErrTableNotFound.New(name)
	}
	return table.Insert(values)
}

// TableInfoFromStr returns the schema of the named table.
func (d *Database) TableInfoFromStr(name string) (*sql.TableInfo, error) {
	table, ok := d.tables[name]
	if !ok {
		return nil, sql.ErrTableNotFound.New(name)
	}
	return table.Info(), nil
}

// TableInfosFromStr returns the schemas of the named tables, in order.
func (d *Database) TableInfosFromStr(names []string) ([]*sql.TableInfo, error) {
	infos := make([]*sql.TableInfo, 0, len(names))
	for _, name := range names {
		info, err := d.TableInfoFromStr(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
