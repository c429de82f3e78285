// Package postgres provides a reqlog writer that stores every record as a
// row in a PostgreSQL table using pgx.
//
// The table is expected to look like:
//
//	CREATE TABLE app_logs (
//	    id          bigserial PRIMARY KEY,
//	    component   text        NOT NULL,
//	    level       text        NOT NULL,
//	    reqid       text,
//	    message     text        NOT NULL,
//	    stack_trace text,
//	    fields      jsonb,
//	    created_at  timestamptz NOT NULL
//	);
//
// CreateTableSQL returns this statement for the configured table name;
// set Config.CreateTable to run it when the writer starts.
//
// Basic Usage:
//
//	w, err := postgres.NewWriter(ctx, postgres.Config{DSN: "postgres://...", Table: "app_logs"})
//	if err != nil {
//		return err
//	}
//	defer w.Close()
package postgres
