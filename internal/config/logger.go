package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a structured logger writing to w at the level named by
// HIVE_LOG_LEVEL (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("HIVE_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}
