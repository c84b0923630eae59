package ingest

import "bytes"

// minTempLen is the unconditional minimum temperature length the dataset
// guarantees (spec.md §4.5): "-?d.d" with at least one integer digit is
// always at least 3 bytes, so the newline search can always start past it.
//
// spec.md also permits skipping a similar minimum prefix before the ';'
// search on the grounds that station names are "at least 3 bytes" in the
// canonical dataset. That guarantee does not hold for every grammar-
// conformant input: this spec's own seed scenarios (S3, S5) use one-letter
// station names. Skipping ahead before searching for ';' would walk past
// the delimiter on those inputs and misparse the row, so that half of the
// optimisation is intentionally not applied here — see DESIGN.md.
const minTempLen = 3

// ProcessChunk scans chunk (which must satisfy the Partitioner invariant:
// non-empty, '\n'-terminated, every line holding exactly one ';') and
// returns a StationTable reflecting only that chunk's rows. No row is
// re-scanned, no bytes are copied: every station key aliases directly into
// chunk's backing array.
func ProcessChunk(chunk []byte, capacityHint int) *StationTable {
	t := NewStationTable(capacityHint)

	pos := 0
	n := len(chunk)
	for pos < n {
		semi := pos + bytes.IndexByte(chunk[pos:], ';')

		nl := semi + 1 + minTempLen + bytes.IndexByte(chunk[semi+1+minTempLen:], '\n')

		name := chunk[pos:semi]
		temp := decodeTemp(chunk[semi+1 : nl])
		t.Update(name, temp)

		pos = nl + 1
	}

	return t
}
