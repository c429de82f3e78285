package file

import (
	"fmt"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// ErrPathNotConfigured is reported when the "path" option is missing.
var ErrPathNotConfigured = fmt.Errorf("file: path option: %w", writer.ErrNotConfigured)
