// Package telemetry is the solver's structured-logging facade: a single
// package-level zerolog.Logger plus a small NamedTimer helper for the
// start/elapsed spans the upstream Rust solvers log around each search
// phase (finish check, full search, DP construction). Callers that want
// different output (a different writer, a different level) reassign
// Logger once at process startup; nothing in this module reads
// environment variables or files to configure it.
package telemetry

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the solver's shared structured logger. It defaults to a
// human-readable console writer at info level; hosts embedding this module
// in a service reassign it (e.g. to a JSON writer) before calling into the
// solver.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// NamedTimer logs a debug-level start line on creation and an elapsed-time
// line when Stop is called, mirroring the original solver's NamedTimer
// utility (used there to bracket the finish-solver pass and the full
// best-first search).
type NamedTimer struct {
	name  string
	start time.Time
}

// NewNamedTimer starts a named span and logs its start at debug level.
func NewNamedTimer(name string) *NamedTimer {
	Logger.Debug().Str("phase", name).Msg("started")
	return &NamedTimer{name: name, start: time.Now()}
}

// Stop logs the span's elapsed duration at debug level. Calling Stop more
// than once logs each call independently against the same start time.
func (t *NamedTimer) Stop() {
	Logger.Debug().Str("phase", t.name).Dur("elapsed", time.Since(t.start)).Msg("finished")
}
