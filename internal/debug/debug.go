// Package debug is a minimal, env-gated diagnostic logger. It is disabled
// by default so the hot ingest loop never pays for formatting: callers are
// expected to log at chunk/worker granularity, never per row.
package debug

import (
	"fmt"
	"log"
	"os"
)

var opts struct {
	isEnabled bool
	logger    *log.Logger
}

var _ = initDebug()

func initDebug() bool {
	debugfile := os.Getenv("DEBUG_LOG")
	toStderr := os.Getenv("ONEBRC_DEBUG") != ""

	if debugfile == "" && !toStderr {
		opts.isEnabled = false
		return false
	}

	if debugfile != "" {
		f, err := os.OpenFile(debugfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to open debug log file: %v\n", err)
			os.Exit(2)
		}
		opts.logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	} else {
		opts.logger = log.New(os.Stderr, "DEBUG: ", log.LstdFlags|log.Lmicroseconds)
	}

	opts.isEnabled = true
	return true
}

// Enabled reports whether debug logging is currently active, so callers on
// a hot path can skip argument construction entirely when it is not.
func Enabled() bool {
	return opts.isEnabled
}

// Log prints a message to the debug log, if enabled.
func Log(f string, args ...interface{}) {
	if !opts.isEnabled {
		return
	}
	opts.logger.Printf(f, args...)
}
