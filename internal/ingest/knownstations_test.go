package ingest

import (
	"context"
	"testing"

	"github.com/rowcrunch/onebrc/internal/rtest"
)

func TestPerfectIndexLookup(t *testing.T) {
	idx := BuildPerfectIndex([]string{"Berlin", "Hamburg", "New York"})
	rtest.Equals(t, 3, idx.Size())

	i, ok := idx.Lookup([]byte("Hamburg"))
	rtest.Assert(t, ok, "expected Hamburg to be found")
	rtest.Assert(t, i >= 0 && i < 3, "slot index out of range: %d", i)

	_, ok = idx.Lookup([]byte("Unknown City"))
	rtest.Assert(t, !ok, "expected unknown station to miss")
}

func TestDenseTableMatchesGeneralPath(t *testing.T) {
	known := []string{"Berlin", "Hamburg", "New York"}
	idx := BuildPerfectIndex(known)

	input := "Berlin;10.0\nHamburg;-12.7\nNew York;21.5\nBerlin;-15.7\n"

	dt, err := processChunkDense([]byte(input), idx)
	rtest.OK(t, err)

	general := ProcessChunk([]byte(input), 16)

	gotGeneral := Format(general)
	gotDense := Format(dt.ToStationTable())
	rtest.Equals(t, gotGeneral, gotDense)
}

func TestDenseTableRejectsUnknownStation(t *testing.T) {
	idx := BuildPerfectIndex([]string{"Berlin"})
	_, err := processChunkDense([]byte("Nowhere;1.0\n"), idx)
	rtest.Assert(t, err != nil, "expected an error for an unknown station")
}

func TestDiscoverStationNames(t *testing.T) {
	input := "Berlin;10.0\nHamburg;-12.7\nBerlin;-15.7\n"
	chunks := Partition([]byte(input), 1)

	names, err := DiscoverStationNames(context.Background(), chunks)
	rtest.OK(t, err)
	rtest.Equals(t, 2, len(names))
}
