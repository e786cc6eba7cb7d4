// SPDX-License-Identifier: MIT

package sparse

import (
	"log/slog"
	"reflect"
)

// Test-Bridge (white-box) for the internal options snapshot.
// Compiled only with the package tests; invisible to importers.

// PanicDegreeInvalid_TestOnly exports the panic message to avoid magic strings in tests.
const PanicDegreeInvalid_TestOnly = panicDegreeInvalid

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Degree int
	Logger *slog.Logger
}

// GatherOptionsSnapshot_TestOnly resolves opts via gatherOptions and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Degree: o.degree, Logger: o.logger}
}

// StrictlyComparable_TestOnly reports whether V takes the == comparison path.
func StrictlyComparable_TestOnly[V any]() bool {
	return strictlyComparable(reflect.TypeFor[V]())
}
