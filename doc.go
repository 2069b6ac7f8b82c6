// SPDX-License-Identifier: MIT

/*
Package lzss implements the match-search core of an LZSS stream compressor:
a sliding dictionary coupled to an intrusive binary search tree, plus the
encoder driver that interleaves search, bit emission, and tree maintenance.
It targets embedded firmware update pipelines where the decoder is tiny but
the compressor must produce a bit-exact stream the decoder can replay.

The paired decoder, file framing, CRC, packaging, and transport are
deliberately out of scope; this package owns only the match-search engine
and the bitstream it emits.

# Bitstream format

Bits are emitted most-significant-bit first, as a concatenation of records:
a literal record is a '1' flag followed by 8 bits of the literal byte; a
back-reference record is a '0' flag, IndexBits bits of window position, and
LengthBits bits of (length-BreakEven-1); the stream ends with a terminator,
a '0' flag followed by IndexBits zero bits.

# Compress

Options may be nil (zero-cost defaults). From a byte slice:

	out, stats, err := lzss.CompressBytes(data, nil)

From abstract sinks (e.g. to avoid buffering the whole output):

	bw := lzss.NewBitWriter(w)
	stats, err := lzss.Compress(bw, bufio.NewReader(r), nil)
	err = bw.Flush()
*/
package lzss
