//go:build !windows && !plan9

package syslog

import stdsyslog "log/syslog"

// Facility is the syslog facility used for every record.
const Facility = stdsyslog.LOG_USER

// Config defines where records are sent.
type Config struct {
	// Network is "", "unix", "udp" or "tcp". Empty means the local daemon.
	Network string `yaml:"network" envconfig:"LOG_SYSLOG_NETWORK"`

	// Address is the remote daemon, e.g. "localhost:514". Ignored when
	// Network is empty.
	Address string `yaml:"address" envconfig:"LOG_SYSLOG_ADDRESS"`
}
