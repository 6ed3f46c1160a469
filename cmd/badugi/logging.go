package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger returns a stderr logger at the named level, falling back to
// info for unknown names.
func setupLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
		Prefix:          "badugi",
	})
}
