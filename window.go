// SPDX-License-Identifier: MIT

package lzss

// slidingWindow is the fixed-size ring buffer of recently-seen input bytes
// that serves as the compression dictionary (component A). The only
// operation is random access by position modulo WindowSize; ownership is
// exclusive to one Compressor instance for its lifetime.
type slidingWindow struct {
	buf [WindowSize]byte
}

// wrapPos folds an arbitrary position into the window's index range. Callers
// pass tree/window positions that may run past WindowSize-1 (e.g. newPos+i
// during a tree descent); this is the one modular-arithmetic chokepoint.
func wrapPos(pos int) int {
	return pos & (WindowSize - 1)
}

// byteAt returns the byte most recently stored at pos (mod WindowSize).
func (w *slidingWindow) byteAt(pos int) byte {
	return w.buf[wrapPos(pos)]
}

// setByte stores b at pos (mod WindowSize).
func (w *slidingWindow) setByte(pos int, b byte) {
	w.buf[wrapPos(pos)] = b
}
