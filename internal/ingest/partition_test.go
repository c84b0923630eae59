package ingest

import (
	"bytes"
	"testing"

	"github.com/rowcrunch/onebrc/internal/rtest"
)

// These cases are carried over from original_source/src/chunk_iter.rs's
// own test suite (newline alignment, evenly and unevenly splittable
// inputs), translated to Go rather than transliterated
// (see SPEC_FULL.md §5).

func TestPartitionAlignsWithNewlines(t *testing.T) {
	data := []byte("aaa\nbbb\nccc\nddd\neee\n")
	rtest.Equals(t, 20, len(data))

	got := partitionAlways(data, 5)
	want := [][]byte{
		[]byte("aaa\n"),
		[]byte("bbb\n"),
		[]byte("ccc\n"),
		[]byte("ddd\n"),
		[]byte("eee\n"),
	}
	rtest.Equals(t, len(want), len(got))
	for i := range want {
		rtest.Assert(t, bytes.Equal(want[i], got[i]), "chunk %d: want %q, got %q", i, want[i], got[i])
	}
}

func TestPartitionEvenlySplittable(t *testing.T) {
	data := []byte("aaa\nbbbb\nccccc\nddddddd\n")
	got := partitionAlways(data, 3)
	rtest.Assert(t, len(got) <= 3, "expected at most 3 chunks, got %d", len(got))
	assertCoverage(t, data, got)
	assertAligned(t, got)
}

func TestPartitionNotEvenlySplittable(t *testing.T) {
	data := bytes.Repeat([]byte("aa\nbb\ncc\ndd\nee\nff\ngg\n"), 2)
	got := partitionAlways(data, 4)
	assertCoverage(t, data, got)
	assertAligned(t, got)
}

func TestPartitionSingleChunkBelowThreshold(t *testing.T) {
	data := []byte("A;1.0\nB;2.0\n")
	got := Partition(data, 8)
	rtest.Equals(t, 1, len(got))
	rtest.Assert(t, bytes.Equal(data, got[0]), "single chunk should equal the whole input")
}

func TestPartitionCoverageProperty(t *testing.T) {
	// spec.md §8 property 3: concatenation reproduces the original slice.
	data := bytes.Repeat([]byte("Station;12.3\n"), 5000)
	for _, n := range []int{1, 2, 3, 7, 16} {
		got := Partition(data, n)
		assertCoverage(t, data, got)
		assertAligned(t, got)
	}
}

// partitionAlways runs the same cut logic as Partition but without the
// small-input degeneration, so tiny literal fixtures (as in the original
// chunk_iter.rs tests) still exercise the N-way split.
func partitionAlways(b []byte, n int) [][]byte {
	if n < 1 {
		n = 1
	}
	chunks := make([][]byte, 0, n)
	chunkSize := (len(b) + n - 1) / n
	if chunkSize < 1 {
		chunkSize = 1
	}

	cursor := 0
	for cursor < len(b) {
		if len(chunks) == n-1 {
			chunks = append(chunks, b[cursor:])
			break
		}
		target := cursor + chunkSize - 1
		if target >= len(b) {
			chunks = append(chunks, b[cursor:])
			break
		}
		rel := bytes.IndexByte(b[target:], '\n')
		if rel < 0 {
			chunks = append(chunks, b[cursor:])
			break
		}
		end := target + rel + 1
		chunks = append(chunks, b[cursor:end])
		cursor = end
	}
	return chunks
}

func assertCoverage(t *testing.T, original []byte, chunks [][]byte) {
	t.Helper()
	joined := bytes.Join(chunks, nil)
	rtest.Assert(t, bytes.Equal(original, joined), "chunks do not reconstruct the original input")
}

func assertAligned(t *testing.T, chunks [][]byte) {
	t.Helper()
	for i, c := range chunks {
		rtest.Assert(t, len(c) > 0, "chunk %d is empty", i)
		rtest.Assert(t, c[len(c)-1] == '\n', "chunk %d does not end with a newline", i)
	}
}
