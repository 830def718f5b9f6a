package rdb

import (
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/terakoya76/rdb-sample/memory"
	"github.com/terakoya76/rdb-sample/sql"
	"github.com/terakoya76/rdb-sample/sql/parse"
	"github.com/terakoya76/rdb-sample/sql/plan"
)

// Engine parses and executes statements against an in-memory database.
type Engine struct {
	db *memory.Database
}

// New returns an engine over db. A nil db rejects every statement with a
// database-not-found error.
func New(db *memory.Database) *Engine {
	return &Engine{db: db}
}

// Query executes a single statement. For SELECT it returns the result
// columns and the root of the operator pipeline, which the caller drains;
// CREATE TABLE and INSERT return an empty result.
func (e *Engine) Query(ctx *sql.Context, query string) ([]sql.Column, sql.ScanIterator, error) {
	span, ctx := ctx.Span("query", opentracing.Tag{Key: "query", Value: query})
	defer span.Finish()

	start := time.Now()
	log := logrus.WithFields(logrus.Fields{
		"id":    ctx.ID(),
		"query": query,
	})
	log.Debug("executing query")

	stmt, err := parse.Parse(query)
	if err != nil {
		return nil, nil, err
	}

	if e.db == nil {
		return nil, nil, sql.ErrDatabaseNotFound.New()
	}

	switch s := stmt.(type) {
	case *parse.CreateTableStmt:
		if err := e.createTable(s); err != nil {
			return nil, nil, err
		}
		log.WithField("duration", time.Since(start)).Debug("table created")
		return nil, sql.TuplesToIter(nil), nil

	case *parse.InsertStmt:
		if err := e.db.InsertInto(s.TableName, s.Values); err != nil {
			return nil, nil, err
		}
		log.WithField("duration", time.Since(start)).Debug("row inserted")
		return nil, sql.TuplesToIter(nil), nil

	case *parse.SelectStmt:
		iter, err := plan.BuildSelect(e.db, s)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("duration", time.Since(start)).Debug("pipeline built")
		return iter.Columns(), iter, nil

	default:
		return nil, nil, sql.ErrBuildExecutor.New("unsupported statement")
	}
}

func (e *Engine) createTable(stmt *parse.CreateTableStmt) error {
	columns := make([]sql.ColumnInfo, len(stmt.Columns))
	for i, col := range stmt.Columns {
		columns[i] = sql.ColumnInfo{
			Name:   col.Name,
			Type:   col.Type,
			Offset: i,
		}
	}

	_, err := e.db.CreateTable(stmt.TableName, columns)
	return err
}
