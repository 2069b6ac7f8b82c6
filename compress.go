// SPDX-License-Identifier: MIT

package lzss

import (
	"bytes"
)

// Compress runs the encoder driver over src, writing the bit-exact LZSS
// stream described by the bitstream format to dst. opts may be nil (uses
// DefaultEncodeOptions). Compression state lives entirely in a pooled
// Compressor instance; multiple concurrent calls use independent instances
// and share no state.
func Compress(dst BitSink, src ByteSource, opts *EncodeOptions) (EncodeStats, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	c := acquireCompressor()
	defer releaseCompressor(c)

	return c.encode(dst, src, opts)
}

// CompressBytes is the convenience entry point for the common in-memory
// case: it wraps src in a bytes.Reader, collects the bitstream into a
// bytes.Buffer via a BitWriter, and flushes the final partial byte before
// returning.
func CompressBytes(src []byte, opts *EncodeOptions) ([]byte, EncodeStats, error) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)

	stats, err := Compress(bw, bytes.NewReader(src), opts)
	if err != nil {
		return nil, stats, err
	}

	if err := bw.Flush(); err != nil {
		return nil, stats, err
	}

	return buf.Bytes(), stats, nil
}
