// SPDX-License-Identifier: MIT

package lzss

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/flate"
)

// referenceCorpus returns deterministic test data standing in for the kind
// of firmware image this package targets: a repeating header pattern over
// the first three quarters, and a tail of pseudo-random bytes that neither
// codec can shrink.
func referenceCorpus(size int) []byte {
	r := rand.New(rand.NewSource(1))
	out := make([]byte, size)
	header := []byte("REFLASH-ECU-IMAGE-HEADER-BLOCK-")
	for i := 0; i < size; i++ {
		switch {
		case i < size*3/4:
			out[i] = header[i%len(header)]
		default:
			out[i] = byte(r.Intn(256))
		}
	}
	return out
}

// BenchmarkCompress_LZSS exercises this package's own encoder driver.
func BenchmarkCompress_LZSS(b *testing.B) {
	data := referenceCorpus(64 * 1024)
	b.ResetTimer()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, _, err := CompressBytes(data, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompress_FlateReference reports the same corpus through
// klauspost/compress/flate as a throughput and ratio reference point. It
// does not participate in the core match-search engine; it exists purely
// so `go test -bench` prints a comparable number alongside the LZSS result.
func BenchmarkCompress_FlateReference(b *testing.B) {
	data := referenceCorpus(64 * 1024)
	b.ResetTimer()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		w, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

// TestReferenceCorpus_RatioSanityCheck is not a benchmark: it asserts the
// LZSS ratio on the reference corpus stays within a sane band, catching a
// gross regression (e.g. an encoder that stops matching entirely) without
// requiring `go test -bench` to run in CI.
func TestReferenceCorpus_RatioSanityCheck(t *testing.T) {
	data := referenceCorpus(64 * 1024)

	_, stats, err := CompressBytes(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Ratio() <= 0 || stats.Ratio() >= 1.2 {
		t.Fatalf("unexpected compression ratio %.3f for a corpus that is 75%% a repeating header", stats.Ratio())
	}
}
