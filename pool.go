// SPDX-License-Identifier: MIT
// Adapted from: github.com/woozymasta/lzo (sliding_window_pool.go)

package lzss

import "sync"

// compressorPool recycles Compressor instances. Each one owns a
// WindowSize-byte window and a WindowSize+1-entry tree, large enough
// (~25KB with default parameters on a 64-bit platform) that pooling them avoids a GC-visible
// allocation on every Compress call.
var compressorPool = sync.Pool{
	New: func() any {
		return &Compressor{}
	},
}

// acquireCompressor gets a zeroed, ready-to-prime Compressor from the pool.
func acquireCompressor() *Compressor {
	c := compressorPool.Get().(*Compressor)
	*c = Compressor{}
	c.engine.tree = &c.tree
	c.tree.win = &c.win
	c.winPos = 1
	return c
}

// releaseCompressor returns c to the pool. c must not be used afterward.
func releaseCompressor(c *Compressor) {
	if c == nil {
		return
	}
	compressorPool.Put(c)
}
