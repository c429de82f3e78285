package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// execer is the part of *pgxpool.Pool used by Writer.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Writer inserts records into a PostgreSQL table. It implements writer.Writer.
type Writer struct {
	*writer.Base

	cfg    Config
	db     execer
	insert string
	close  func()
	now    func() time.Time
	log    *zap.Logger
}

// NewWriter opens a connection pool and optionally creates the table.
func NewWriter(ctx context.Context, cfg Config) (*Writer, error) {
	if cfg.DSN == "" {
		return nil, ErrNoDSN
	}
	cfg = cfg.withDefaults()

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: postgres: %v", writer.ErrConnectionFailed, err)
	}

	if cfg.CreateTable {
		if _, err := pool.Exec(ctx, CreateTableSQL(cfg.Table)); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create log table: %w", err)
		}
	}

	return newWriter(cfg, pool, pool.Close), nil
}

func newWriter(cfg Config, db execer, closeFn func()) *Writer {
	cfg = cfg.withDefaults()
	return &Writer{
		Base:   writer.NewBase(writer.Config{}),
		cfg:    cfg,
		db:     db,
		insert: InsertSQL(cfg.Table),
		close:  closeFn,
		now:    time.Now,
		log:    zap.NewNop(),
	}
}

// WithDiagnostics sets the logger that receives write failures.
func (w *Writer) WithDiagnostics(log *zap.Logger) *Writer {
	if log != nil {
		w.log = log
	}
	return w
}

// Write inserts one row.
func (w *Writer) Write(component, message string, l level.Level, fields writer.Context) bool {
	if err := w.write(component, message, l, fields); err != nil {
		w.log.Debug("postgres writer: record dropped",
			zap.String("component", component),
			zap.String("level", l.String()),
			zap.String("table", w.cfg.Table),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (w *Writer) write(component, message string, l level.Level, fields writer.Context) error {
	env := writer.NewEnvelope(component, message, l, fields, w.now())

	var extra []byte
	if len(env.Fields) > 0 {
		var err error
		if extra, err = writer.MarshalJSON(env.Fields); err != nil {
			return fmt.Errorf("failed to encode fields: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.WriteTimeout)
	defer cancel()

	_, err := w.db.Exec(ctx, w.insert,
		env.Component,
		env.Level,
		nullableString(env.RequestID),
		env.Message,
		nullableString(env.StackTrace),
		extra,
		env.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", writer.ErrWriteFailed, err)
	}
	return nil
}

// Close closes the connection pool.
func (w *Writer) Close() error {
	if w.close != nil {
		w.close()
	}
	return nil
}

// InsertSQL returns the insert statement for table.
func InsertSQL(table string) string {
	return fmt.Sprintf(
		"INSERT INTO %s (component, level, reqid, message, stack_trace, fields, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		quoteTable(table),
	)
}

// CreateTableSQL returns the DDL for table.
func CreateTableSQL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id          bigserial PRIMARY KEY,
	component   text        NOT NULL,
	level       text        NOT NULL,
	reqid       text,
	message     text        NOT NULL,
	stack_trace text,
	fields      jsonb,
	created_at  timestamptz NOT NULL
)`, quoteTable(table))
}

func quoteTable(table string) string {
	return pgx.Identifier(strings.Split(table, ".")).Sanitize()
}

func nullableString(v interface{}) *string {
	if v == nil {
		return nil
	}
	s := writer.ValueString(v)
	return &s
}
