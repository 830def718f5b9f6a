package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrSyntax is returned when a statement cannot be parsed.
	ErrSyntax = errors.NewKind("syntax error: %s")

	// ErrTableNotFound is returned when a table is not in the catalog.
	ErrTableNotFound = errors.NewKind("table not found: %s")

	// ErrColumnNotFound is returned when a column reference cannot be
	// resolved against the schema in scope.
	ErrColumnNotFound = errors.NewKind("column not found: %s")

	// ErrDatabaseNotFound is returned when no catalog is attached.
	ErrDatabaseNotFound = errors.NewKind("database not found")

	// ErrBuildExecutor is returned when a statement has a shape the
	// pipeline builder does not support.
	ErrBuildExecutor = errors.NewKind("cannot build executor: %s")

	// ErrInvalidType is returned for an unknown column dtype.
	ErrInvalidType = errors.NewKind("invalid type: %v")

	// ErrInsertArity is returned when an inserted row does not match the
	// table's column count.
	ErrInsertArity = errors.NewKind("table %s has %d columns, got %d values")
)
