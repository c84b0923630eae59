package ingest

import "bytes"

// smallInputThreshold is the byte length below which partitioning
// degenerates to a single chunk regardless of the requested worker count
// (spec.md §4.2, §5).
const smallInputThreshold = 10_000

// Partition splits b into at most n contiguous, newline-aligned
// sub-slices whose concatenation reproduces b exactly. b must end in '\n'.
//
// The algorithm computes a nominal chunk size ceil(len(b)/n) and, starting
// from the cursor, cuts at the first '\n' at or after cursor+chunk-1; the
// final chunk always runs to the end of the buffer. Every returned chunk
// contains at least one complete line.
func Partition(b []byte, n int) [][]byte {
	if n < 1 {
		n = 1
	}
	if len(b) < smallInputThreshold {
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
			// no newline between target and EOF: the remainder is one
			// (possibly oversized) final chunk.
			chunks = append(chunks, b[cursor:])
			break
		}

		end := target + rel + 1 // inclusive of the newline
		chunks = append(chunks, b[cursor:end])
		cursor = end
	}

	return chunks
}
