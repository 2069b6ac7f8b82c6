// SPDX-License-Identifier: MIT

package lzss

// Bitstream format parameters. These are compile-time constants: changing
// IndexBits or LengthBits changes the wire format and breaks compatibility
// with any already-deployed decoder (the decoder is out of scope for this
// package but the bitstream it replays is normative).
const (
	// IndexBits is the number of bits used to encode a window position in a
	// back-reference record.
	IndexBits = 10
	// LengthBits is the number of bits used to encode a match length field.
	LengthBits = 4

	// WindowSize is the size of the sliding dictionary, 2^IndexBits.
	WindowSize = 1 << IndexBits
	// RawLookahead is 2^LengthBits, the number of encodable length values.
	RawLookahead = 1 << LengthBits
	// BreakEven is the minimum match length minus one below which emitting a
	// back-reference costs more bits than the literals it would replace.
	BreakEven = (1 + IndexBits + LengthBits) / 9
	// Lookahead is the longest match the encoder will ever report.
	Lookahead = RawLookahead + BreakEven

	// EndOfStream is the reserved window-position value that marks the
	// decoder-recognised stream terminator. Position 0 is never used as a
	// real tree node (the driver starts writing at position 1), so this
	// value can never collide with a genuine back-reference.
	EndOfStream = 0
)

// unusedPos is the intrusive-tree "no link" sentinel, overloaded onto window
// position 0 per the rules above.
const unusedPos = 0

// rootPos is the fixed index of the tree's sentinel root node, one past the
// last real window position.
const rootPos = WindowSize
