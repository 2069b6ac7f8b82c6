// SPDX-License-Identifier: MIT

package lzss

import (
	"io"
	"log/slog"
)

// EncodeOptions configures a single Compress call. The zero value is a
// valid, production-cheap configuration: DefaultEncodeOptions is provided
// for symmetry with the rest of the ecosystem's Options/DefaultOptions
// pattern, not because the zero value needs help.
type EncodeOptions struct {
	// Logger receives Debug-level traces of tree initialisation and of
	// each literal/back-reference decision. Nothing is logged at other
	// levels. nil disables logging.
	Logger *slog.Logger

	// Strict enables the tree-structural invariant checks (see Validate) on
	// every driver step. This is O(WindowSize) extra work per record emitted
	// and is intended for tests and fuzzing, not production use.
	Strict bool

	// StatsSink, if non-nil, is invoked once with the final EncodeStats
	// after the terminator record has been emitted.
	StatsSink func(EncodeStats)
}

// DefaultEncodeOptions returns the zero-cost production default: no
// logging, no strict assertions, no stats callback.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// logger returns o.Logger, or a logger that drops every record, so the
// driver can log unconditionally without nil-checking at every call site.
func (o *EncodeOptions) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}
