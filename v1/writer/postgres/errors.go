package postgres

import (
	"fmt"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// ErrNoDSN is returned by NewWriter when Config.DSN is empty.
var ErrNoDSN = fmt.Errorf("postgres: dsn: %w", writer.ErrNotConfigured)
