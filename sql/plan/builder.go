package plan

import (
	"fmt"

	"github.com/terakoya76/rdb-sample/sql"
	"github.com/terakoya76/rdb-sample/sql/parse"
)

// BuildSelect composes the physical pipeline for a parsed SELECT against
// the catalog: Scan for one table, Scan ⨝ Scan for two, then Selection and
// Projection on top. Joining more than two tables is not supported.
func BuildSelect(db sql.Database, stmt *parse.SelectStmt) (sql.ScanIterator, error) {
	var source sql.ScanIterator

	switch len(stmt.Source.Tables) {
	case 1:
		scan, err := buildScan(db, stmt.Source.Tables[0])
		if err != nil {
			return nil, err
		}
		source = scan

	case 2:
		outer, err := buildScan(db, stmt.Source.Tables[0])
		if err != nil {
			return nil, err
		}
		inner, err := buildScan(db, stmt.Source.Tables[1])
		if err != nil {
			return nil, err
		}
		source, err = NewNestedLoopJoin(outer, inner, stmt.Source.Condition)
		if err != nil {
			return nil, err
		}

	default:
		return nil, sql.ErrBuildExecutor.New(
			fmt.Sprintf("select from %d tables is not supported", len(stmt.Source.Tables)),
		)
	}

	var selectors []*Selector
	if stmt.Condition != nil {
		var err error
		selectors, err = CompileWhere(stmt.Condition, false, source.Columns())
		if err != nil {
			return nil, err
		}
	}

	return NewProjection(NewSelection(source, selectors), stmt.Targets)
}

// buildScan loads a table and scans it in full.
func buildScan(db sql.Database, name string) (*MemoryTableScan, error) {
	table, err := db.LoadTable(name)
	if err != nil {
		return nil, err
	}
	info, err := db.TableInfoFromStr(name)
	if err != nil {
		return nil, err
	}
	return NewMemoryTableScan(table, info, []sql.Range{fullRange(info)}), nil
}

// fullRange covers every record id the table has allocated so far.
func fullRange(info *sql.TableInfo) sql.Range {
	return sql.NewRange(1, info.NextRecordID.Base()-1)
}
