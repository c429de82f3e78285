package file

import "os"

const (
	// DefaultDirMode is used for directories created on demand.
	DefaultDirMode os.FileMode = 0755

	// DefaultFileMode is used for new log files.
	DefaultFileMode os.FileMode = 0644

	// OptionPath is the writer option holding the log directory.
	OptionPath = "path"

	// TimestampLayout is ISO-8601 with a numeric UTC offset.
	TimestampLayout = "2006-01-02T15:04:05-0700"

	// DateLayout names the daily files.
	DateLayout = "2006-01-02"
)

// Config defines the file writer settings.
type Config struct {
	// Path is the root log directory. It seeds the "path" option.
	Path string `yaml:"path" envconfig:"LOG_FILE_PATH"`

	// DirMode is the permission for created directories. Zero means DefaultDirMode.
	DirMode os.FileMode `yaml:"dir_mode" envconfig:"LOG_FILE_DIR_MODE"`

	// FileMode is the permission for created files. Zero means DefaultFileMode.
	FileMode os.FileMode `yaml:"file_mode" envconfig:"LOG_FILE_MODE"`
}
