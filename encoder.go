// SPDX-License-Identifier: MIT
// Adapted from: github.com/woozymasta/lzo (match.go: advanceMatchFinder)

package lzss

import (
	"errors"
	"fmt"
	"io"
)

// Compressor is the encoder driver (component D). It owns the sliding
// window and the position tree for the lifetime of one Compress call and
// is not reentrant: the sinks it calls must not call back into it. Use
// Compress or CompressBytes rather than constructing one directly — both
// acquire an instance from an internal pool sized for WindowSize.
type Compressor struct {
	win    slidingWindow
	tree   PositionTree
	engine matchEngine

	winPos     int
	ahead      int
	matchLen   int
	matchPos   int
	eosReached bool

	stats EncodeStats
}

// encode runs the full priming/main-loop/finalising state machine,
// reading from src and writing to dst.
func (c *Compressor) encode(dst BitSink, src ByteSource, opts *EncodeOptions) (EncodeStats, error) {
	log := opts.logger()

	// Priming: fill the look-ahead before any decision is made.
	for c.ahead < Lookahead && !c.eosReached {
		b, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.eosReached = true
				break
			}
			return c.stats, fmt.Errorf("lzss: priming read: %w", err)
		}
		c.win.setByte(c.winPos+c.ahead, b)
		c.ahead++
		c.stats.InputBytes++
	}

	c.tree.Init(c.winPos)
	log.Debug("tree primed", "winPos", c.winPos, "ahead", c.ahead)

	for c.ahead > 0 {
		if c.matchLen > c.ahead {
			c.matchLen = c.ahead
		}

		var repl int
		if c.matchLen <= BreakEven {
			repl = 1
			if err := dst.WriteBit(1); err != nil {
				return c.stats, fmt.Errorf("lzss: write literal flag: %w", err)
			}
			if err := dst.WriteBits(uint32(c.win.byteAt(c.winPos)), 8); err != nil {
				return c.stats, fmt.Errorf("lzss: write literal byte: %w", err)
			}
			c.stats.Literals++
			c.stats.OutputBits += 1 + 8
			log.Debug("literal", "winPos", c.winPos, "byte", c.win.byteAt(c.winPos))
		} else {
			repl = c.matchLen
			lengthField := c.matchLen - (BreakEven + 1)
			if opts.Strict && (lengthField < 0 || lengthField > RawLookahead-1) {
				panic(&InvariantError{Op: "encode", Position: c.winPos, Err: fmt.Errorf("length field %d out of range", lengthField)})
			}
			if err := dst.WriteBit(0); err != nil {
				return c.stats, fmt.Errorf("lzss: write match flag: %w", err)
			}
			if err := dst.WriteBits(uint32(c.matchPos), IndexBits); err != nil {
				return c.stats, fmt.Errorf("lzss: write match position: %w", err)
			}
			if err := dst.WriteBits(uint32(lengthField), LengthBits); err != nil {
				return c.stats, fmt.Errorf("lzss: write match length: %w", err)
			}
			c.stats.BackReferences++
			c.stats.LengthHistogram[lengthField]++
			c.stats.OutputBits += 1 + IndexBits + LengthBits
			log.Debug("back-reference", "pos", c.matchPos, "len", c.matchLen)
		}

		if err := c.advance(src, repl); err != nil {
			return c.stats, err
		}

		if opts.Strict {
			if err := c.tree.Validate(); err != nil {
				return c.stats, err
			}
		}
	}

	if err := dst.WriteBit(0); err != nil {
		return c.stats, fmt.Errorf("lzss: write terminator flag: %w", err)
	}
	if err := dst.WriteBits(EndOfStream, IndexBits); err != nil {
		return c.stats, fmt.Errorf("lzss: write terminator position: %w", err)
	}
	c.stats.OutputBits += 1 + IndexBits

	if opts.StatsSink != nil {
		opts.StatsSink(c.stats)
	}

	return c.stats, nil
}

// advance replays repl steps of window/tree maintenance: evict the slot
// about to be overwritten, pull in the next input byte (or shrink ahead on
// EOF), slide winPos forward, and refresh matchLen/matchPos for the next
// main-loop iteration.
func (c *Compressor) advance(src ByteSource, repl int) error {
	for step := 0; step < repl; step++ {
		evict := wrapPos(c.winPos + Lookahead)
		c.tree.DeleteNode(evict)

		b, err := src.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("lzss: advance read: %w", err)
			}
			c.ahead--
		} else {
			c.win.setByte(evict, b)
			c.stats.InputBytes++
		}

		c.winPos = wrapPos(c.winPos + 1)

		if c.ahead > 0 {
			c.matchLen, c.matchPos = c.engine.searchAndInsert(c.winPos)
		}
	}
	return nil
}
