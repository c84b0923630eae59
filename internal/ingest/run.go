package ingest

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rowcrunch/onebrc/internal/debug"
	"github.com/rowcrunch/onebrc/internal/errors"
)

// Options configures one Run.
type Options struct {
	// Workers is the number of parallel ChunkProcessor goroutines. Zero
	// means runtime.GOMAXPROCS(0) (spec.md §5: "one per logical CPU ...
	// defaulting to the runtime-reported parallelism").
	Workers int
	// KnownStations, when non-nil, switches to the perfect-hash dense
	// fast path over this corpus (spec.md §9) instead of the general
	// xxhash-backed StationTable.
	KnownStations []string
}

// Run executes FileMap -> ChunkPartitioner -> N ChunkProcessors ->
// Reducer -> Formatter over mapped's contents and returns the canonical
// output line. It does not close the FileMap: callers that want to hide
// munmap latency behind their own I/O should call Close after writing the
// result (spec.md §5 "Teardown latency").
func Run(ctx context.Context, mapped *FileMap, opts Options) (string, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunks := Partition(mapped.Bytes(), workers)
	debug.Log("partitioned %d bytes into %d chunks (requested %d workers)", mapped.Len(), len(chunks), workers)

	if opts.KnownStations != nil {
		return runKnown(ctx, chunks, opts.KnownStations)
	}
	return runGeneral(ctx, chunks)
}

func runGeneral(ctx context.Context, chunks [][]byte) (string, error) {
	tables := make([]*StationTable, len(chunks))

	g, _ := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			tables[i] = ProcessChunk(chunk, 512)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	combined := Reduce(tables)
	debug.Log("reduced %d tables into %d distinct stations", len(tables), combined.Len())
	return Format(combined), nil
}

// runKnown commits to the perfect-hash dense fast path only after a
// discovery pre-pass (spec.md §9) confirms every station name actually
// present in the input is part of the known corpus. Discovering up front,
// across all chunks concurrently, turns an unknown station into one clean
// fatal error before any dense table work happens, rather than a
// first-worker-to-fail race during processChunkDense.
func runKnown(ctx context.Context, chunks [][]byte, known []string) (string, error) {
	idx := BuildPerfectIndex(known)

	discovered, err := DiscoverStationNames(ctx, chunks)
	if err != nil {
		return "", err
	}
	for _, name := range discovered {
		if _, ok := idx.Lookup([]byte(name)); !ok {
			return "", errors.Fatalf("unknown station %q under --known-stations", name)
		}
	}
	debug.Log("discovery pre-pass found %d distinct stations, all within the known corpus", len(discovered))

	tables := make([]*DenseTable, len(chunks))

	g, _ := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			dt, err := processChunkDense(chunk, idx)
			if err != nil {
				return err
			}
			tables[i] = dt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	combined := tables[0]
	for _, dt := range tables[1:] {
		combined.Merge(dt)
	}

	debug.Log("reduced %d dense tables over %d known stations", len(tables), idx.Size())
	return Format(combined.ToStationTable()), nil
}

func processChunkDense(chunk []byte, idx *PerfectIndex) (*DenseTable, error) {
	dt := NewDenseTable(idx)

	pos := 0
	for pos < len(chunk) {
		semi := indexSemicolon(chunk, pos)
		nl := indexNewline(chunk, semi)

		name := chunk[pos:semi]
		temp := decodeTemp(chunk[semi+1 : nl])
		if err := dt.Update(name, temp); err != nil {
			return nil, err
		}

		pos = nl + 1
	}

	return dt, nil
}
