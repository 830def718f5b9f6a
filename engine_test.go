package rdb

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terakoya76/rdb-sample/memory"
	"github.com/terakoya76/rdb-sample/sql"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	require := require.New(t)

	engine := New(memory.NewDatabase("test"))
	ctx := sql.NewEmptyContext()
	for _, query := range []string{
		"CREATE TABLE t (id int, name text)",
		"INSERT INTO t VALUES (1, 'a')",
		"INSERT INTO t VALUES (2, 'b')",
		"INSERT INTO t VALUES (3, 'c')",
		"CREATE TABLE a (k int, v text)",
		"INSERT INTO a VALUES (1, 'p')",
		"INSERT INTO a VALUES (2, 'q')",
		"CREATE TABLE b (k int, w text)",
		"INSERT INTO b VALUES (2, 'r')",
		"INSERT INTO b VALUES (3, 's')",
	} {
		_, _, err := engine.Query(ctx, query)
		require.NoError(err, query)
	}
	return engine
}

func mustQuery(t *testing.T, engine *Engine, query string) []sql.Tuple {
	t.Helper()
	require := require.New(t)

	_, iter, err := engine.Query(sql.NewEmptyContext(), query)
	require.NoError(err)
	tuples, err := sql.IterToTuples(iter)
	require.NoError(err)
	return tuples
}

func TestQuerySingleTableProjection(t *testing.T) {
	require := require.New(t)
	engine := newTestEngine(t)

	tuples := mustQuery(t, engine, "SELECT name FROM t")
	require.Equal([]sql.Tuple{
		sql.NewTuple(sql.NewText("a")),
		sql.NewTuple(sql.NewText("b")),
		sql.NewTuple(sql.NewText("c")),
	}, tuples)
}

func TestQueryWhereEqualityFiltersOut(t *testing.T) {
	require := require.New(t)
	engine := newTestEngine(t)

	// an equality outside OR compiles inverted, so the matching row is the
	// one removed
	tuples := mustQuery(t, engine, "SELECT id FROM t WHERE id = 2")
	require.Equal([]sql.Tuple{
		sql.NewTuple(sql.NewInt64(1)),
		sql.NewTuple(sql.NewInt64(3)),
	}, tuples)
}

func TestQueryWhereOrIsConjunctive(t *testing.T) {
	require := require.New(t)
	engine := newTestEngine(t)

	// both equalities compile as written and apply conjunctively; no row
	// is 1 and 3 at once
	tuples := mustQuery(t, engine, "SELECT id FROM t WHERE id = 1 OR id = 3")
	require.Len(tuples, 0)
}

func TestQueryCartesianJoin(t *testing.T) {
	require := require.New(t)
	engine := newTestEngine(t)

	tuples := mustQuery(t, engine, "SELECT a.k, b.k FROM a, b")
	require.Equal([]sql.Tuple{
		sql.NewTuple(sql.NewInt64(1), sql.NewInt64(2)),
		sql.NewTuple(sql.NewInt64(1), sql.NewInt64(3)),
		sql.NewTuple(sql.NewInt64(2), sql.NewInt64(2)),
		sql.NewTuple(sql.NewInt64(2), sql.NewInt64(3)),
	}, tuples)
}

func TestQueryEquiJoinOn(t *testing.T) {
	require := require.New(t)
	engine := newTestEngine(t)

	tuples := mustQuery(t, engine, "SELECT a.v, b.w FROM a, b ON a.k = b.k")
	require.Equal([]sql.Tuple{
		sql.NewTuple(sql.NewText("q"), sql.NewText("r")),
	}, tuples)
}

func TestQueryProjectionOrderAfterJoin(t *testing.T) {
	require := require.New(t)
	engine := newTestEngine(t)

	tuples := mustQuery(t, engine, "SELECT b.w, a.v FROM a, b ON a.k = b.k")
	require.Equal([]sql.Tuple{
		sql.NewTuple(sql.NewText("r"), sql.NewText("q")),
	}, tuples)
}

func TestQueryResultColumns(t *testing.T) {
	require := require.New(t)
	engine := newTestEngine(t)

	cols, iter, err := engine.Query(sql.NewEmptyContext(), "SELECT name, id FROM t")
	require.NoError(err)
	require.Equal([]sql.Column{
		{TableName: "t", Name: "name", Type: sql.Text, Offset: 0},
		{TableName: "t", Name: "id", Type: sql.Int64, Offset: 1},
	}, cols)

	_, err = sql.IterToTuples(iter)
	require.NoError(err)
}

func TestQueryDDLAndInsertReturnEmptyResult(t *testing.T) {
	require := require.New(t)
	engine := New(memory.NewDatabase("test"))
	ctx := sql.NewEmptyContext()

	cols, iter, err := engine.Query(ctx, "CREATE TABLE t (id int)")
	require.NoError(err)
	require.Nil(cols)
	_, err = iter.Next()
	require.Equal(io.EOF, err)

	_, iter, err = engine.Query(ctx, "INSERT INTO t VALUES (1)")
	require.NoError(err)
	_, err = iter.Next()
	require.Equal(io.EOF, err)
}

func TestQueryErrors(t *testing.T) {
	require := require.New(t)
	engine := newTestEngine(t)
	ctx := sql.NewEmptyContext()

	_, _, err := engine.Query(ctx, "SELECT name FROM")
	require.True(sql.ErrSyntax.Is(err))

	_, _, err = engine.Query(ctx, "SELECT name FROM missing")
	require.True(sql.ErrTableNotFound.Is(err))

	_, _, err = engine.Query(ctx, "SELECT missing FROM t")
	require.True(sql.ErrColumnNotFound.Is(err))

	_, _, err = engine.Query(ctx, "SELECT * FROM t, a, b")
	require.True(sql.ErrBuildExecutor.Is(err))

	_, _, err = engine.Query(ctx, "INSERT INTO missing VALUES (1)")
	require.True(sql.ErrTableNotFound.Is(err))
}

func TestQueryNoDatabase(t *testing.T) {
	require := require.New(t)
	engine := New(nil)

	_, _, err := engine.Query(sql.NewEmptyContext(), "SELECT * FROM t")
	require.True(sql.ErrDatabaseNotFound.Is(err))
}
