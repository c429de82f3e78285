package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

type execCall struct {
	sql         string
	args        []any
	hasDeadline bool
}

type fakeDB struct {
	calls []execCall
	err   error
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	_, ok := ctx.Deadline()
	f.calls = append(f.calls, execCall{sql, args, ok})
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestWriter(db *fakeDB) *Writer {
	w := newWriter(Config{Table: "logs.app"}, db, nil)
	w.now = func() time.Time { return fixedNow }
	return w
}

func TestWriteInsertsRow(t *testing.T) {
	db := &fakeDB{}
	w := newTestWriter(db)

	ok := w.Write("billing", "charged {amount}", level.Warning, writer.Context{
		writer.KeyRequestID:  "req-1",
		writer.KeyStackTrace: "#0 a.go(1): main.main()\n",
		"amount":             5,
	})
	require.True(t, ok)
	require.Len(t, db.calls, 1)

	call := db.calls[0]
	assert.True(t, call.hasDeadline)
	assert.Equal(t, `INSERT INTO "logs"."app" (component, level, reqid, message, stack_trace, fields, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`, call.sql)
	require.Len(t, call.args, 7)
	assert.Equal(t, "billing", call.args[0])
	assert.Equal(t, "warning", call.args[1])
	assert.Equal(t, "req-1", *call.args[2].(*string))
	assert.Equal(t, "charged 5", call.args[3])
	assert.Equal(t, "#0 a.go(1): main.main()\n", *call.args[4].(*string))
	assert.JSONEq(t, `{"amount":5}`, string(call.args[5].([]byte)))
	assert.Equal(t, fixedNow, call.args[6])
}

func TestWriteNullColumns(t *testing.T) {
	db := &fakeDB{}
	w := newTestWriter(db)

	require.True(t, w.Write("api", "m", level.Info, writer.Context{}))
	args := db.calls[0].args
	assert.Nil(t, args[2].(*string))
	assert.Nil(t, args[4].(*string))
	assert.Nil(t, args[5].([]byte))
}

func TestWriteFailure(t *testing.T) {
	w := newTestWriter(&fakeDB{err: errors.New("relation does not exist")})
	assert.False(t, w.Write("api", "m", level.Info, writer.Context{}))
}

func TestClose(t *testing.T) {
	closed := false
	w := newWriter(Config{}, &fakeDB{}, func() { closed = true })
	require.NoError(t, w.Close())
	assert.True(t, closed)
	assert.Equal(t, DefaultTable, w.cfg.Table)
}

func TestCreateTableSQL(t *testing.T) {
	sql := CreateTableSQL("app_logs")
	assert.Contains(t, sql, `CREATE TABLE IF NOT EXISTS "app_logs"`)
	assert.Contains(t, sql, "fields      jsonb")
}

func TestNewWriterRequiresDSN(t *testing.T) {
	_, err := NewWriter(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrNoDSN)
}
