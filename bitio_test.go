// SPDX-License-Identifier: MIT

package lzss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriter_WriteBitMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)

	bits := []uint8{1, 0, 1, 0, 1, 0, 1, 1}
	for _, b := range bits {
		require.NoError(t, bw.WriteBit(b))
	}

	require.Equal(t, []byte{0b10101011}, buf.Bytes())
}

func TestBitWriter_WriteBitsMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)

	require.NoError(t, bw.WriteBits(0b101, 3))
	require.NoError(t, bw.WriteBits(0, 5))
	require.NoError(t, bw.Flush())

	require.Equal(t, []byte{0b10100000}, buf.Bytes())
}

func TestBitWriter_FlushPadsWithZero(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)

	require.NoError(t, bw.WriteBit(1))
	require.NoError(t, bw.Flush())
	require.Equal(t, []byte{0b10000000}, buf.Bytes())

	// Flushing an already byte-aligned buffer is a no-op.
	require.NoError(t, bw.Flush())
	require.Equal(t, []byte{0b10000000}, buf.Bytes())
}

func TestBitWriter_WriteBitsRejectsOutOfRangeCount(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)

	require.ErrorIs(t, bw.WriteBits(1, 0), ErrBitCountOutOfRange)
	require.ErrorIs(t, bw.WriteBits(1, 33), ErrBitCountOutOfRange)
}

func TestBitWriter_WriteBitsTakesOnlyLowNBits(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)

	// Only the low 10 bits of value should ever reach the stream: 0xFFFFFC01
	// has low-10 bits 0000000001, written MSB-first and zero-padded on flush.
	require.NoError(t, bw.WriteBits(0xFFFFFC01, 10))
	require.NoError(t, bw.Flush())

	require.Equal(t, []byte{0b00000000, 0b01000000}, buf.Bytes())
}

func TestByteSource_BytesReaderSatisfiesInterface(t *testing.T) {
	var src ByteSource = bytes.NewReader([]byte{0xAB})
	b, err := src.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), b)

	_, err = src.ReadByte()
	require.Error(t, err)
}
