// SPDX-License-Identifier: MIT

package lzss

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers can use errors.Is(err, lzss.ErrTreeInvariant) and
// friends without caring whether the error was wrapped by InvariantError.
var (
	// ErrBitCountOutOfRange is returned by BitWriter.WriteBits when n is
	// outside [1, 32].
	ErrBitCountOutOfRange = errors.New("lzss: bit count out of range [1,32]")

	// ErrTreeInvariant is the class of "programming invariant violation"
	// from the error handling design: a tree link inconsistency, a double
	// insert, or a delete that left the structure inconsistent. These are
	// never expected from a correct driver and exist so Strict-mode tests
	// and fuzzing can assert on them with errors.Is.
	ErrTreeInvariant = errors.New("lzss: position tree invariant violation")
)

// InvariantError wraps ErrTreeInvariant with the operation and window
// position at which the violation was observed, so a failing assertion in
// Strict mode carries enough context to reproduce it.
type InvariantError struct {
	Op       string
	Position int
	Err      error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("lzss: %s: invariant violation at position %d: %v", e.Op, e.Position, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

func (e *InvariantError) Is(target error) bool { return target == ErrTreeInvariant }
