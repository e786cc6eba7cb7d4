// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Store construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Dimensionality and the default value are constructor arguments, not
// options: they define what the store is, not how it is tuned.
package sparse

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDegree is the B-tree degree of the ordered cell index.
	// Each node holds between DefaultDegree-1 and 2*DefaultDegree-1 cells.
	DefaultDegree = 32

	// minDegree is the smallest degree the B-tree accepts.
	minDegree = 2

	// logSystem tags every record emitted by a Store.
	logSystem = "sparse"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDegreeInvalid = "sparse: WithDegree: degree must be >= 2"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	degree int          // >= minDegree; DefaultDegree
	logger *slog.Logger // never nil after gatherOptions
}

// WithDegree sets the B-tree degree of the cell index.
// Implementation:
//   - Stage 1: validate d >= 2.
//   - Stage 2: return a setter that writes d into Options.
//
// Errors:
//   - Panics with a stable message when d is invalid (programmer error).
//
// Notes:
//   - Degree tunes memory layout only; ordering and semantics are unchanged.
func WithDegree(d int) Option {
	if d < minDegree {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = d }
}

// WithLogger installs a structured logger. Stores emit Debug-level records
// for insertions, erasures, clones, takes and clears, tagged system=sparse.
// A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gatherOptions applies opts over the documented defaults.
// Nil options are skipped; a nil logger resolves to the discard logger.
func gatherOptions(opts ...Option) Options {
	o := Options{
		degree: DefaultDegree,
		logger: discardLogger(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}
