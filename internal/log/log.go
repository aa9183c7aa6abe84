// Package log provides the leveled, structured logger used across cfgraph
// for diagnostics that are not errors: the channel-assignment pass
// dropping a cyclic constraint (spec.md §9 Open Questions), network
// simplex hitting its pivot cap, and similar. It is a thin
// wrapper over charmbracelet/log, following the same NewWithOptions
// idiom as the retrieval pack's CLI tooling.
package log

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the type every cfgraph package logs through.
type Logger = log.Logger

// Level re-exports charmbracelet/log's level type for callers that want
// to raise verbosity, e.g. to observe coordinate's dropped-constraint
// notices (see sugiyama.WithLogger).
type Level = log.Level

const (
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
	WarnLevel  = log.WarnLevel
	ErrorLevel = log.ErrorLevel
)

// New builds a Logger writing to w at the given level, with a short
// "HH:MM:SS.ms" timestamp and the emitting package name as its prefix.
func New(w io.Writer, level Level, prefix string) *Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
		Prefix:          prefix,
	})
}

// Nop returns a Logger at ErrorLevel writing to io.Discard, the default
// for layout builds that have not opted into diagnostics.
func Nop(prefix string) *Logger {
	return New(io.Discard, ErrorLevel, prefix)
}

// Default returns a Logger at WarnLevel writing to stderr.
func Default(prefix string) *Logger {
	return New(os.Stderr, WarnLevel, prefix)
}
