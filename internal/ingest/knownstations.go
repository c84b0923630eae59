package ingest

import (
	"bytes"
	"context"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rowcrunch/onebrc/internal/errors"
)

// PerfectIndex maps each name of a known, fixed set of station names to a
// dense slot index in [0, len(names)), built once at startup (spec.md §9
// "Known-key fast path"), so DenseTable can keep its aggregates in a flat
// slice instead of StationTable's open-addressing table. It never grows.
//
// The index is a Go map from xxhash.Sum64(name) to the name's position in
// names. Lookup compares hashes only, never the names themselves: a name
// outside the set whose 64-bit hash equals a known name's hash is reported
// as that known name. It is not a third-party MPH library — none appears
// in the example corpus — and is small enough (O(len(names))) to be
// in-house (see DESIGN.md Open Questions).
type PerfectIndex struct {
	names []string
	slot  map[uint64]int // xxhash(name) -> slot index, built once
}

// BuildPerfectIndex constructs a PerfectIndex over names. It is a
// programming error (panic) to pass duplicate names.
func BuildPerfectIndex(names []string) *PerfectIndex {
	slot := make(map[uint64]int, len(names))
	for i, n := range names {
		h := xxhash.Sum64String(n)
		if _, dup := slot[h]; dup {
			panic("onebrc: duplicate station name in known-station corpus")
		}
		slot[h] = i
	}
	return &PerfectIndex{names: names, slot: slot}
}

// Lookup returns the dense slot index for name and true, or (0, false) if
// name is not part of the known corpus.
func (p *PerfectIndex) Lookup(name []byte) (int, bool) {
	h := xxhash.Sum64(name)
	idx, ok := p.slot[h]
	return idx, ok
}

// Size is the number of known stations, i.e. the required length of a
// dense Aggregate vector indexed by Lookup's result.
func (p *PerfectIndex) Size() int {
	return len(p.names)
}

// DenseTable is the known-station fast path's StationTable replacement: a
// flat []Aggregate indexed by a PerfectIndex. Update is O(1) with no
// probing at all, at the cost of rejecting any name the index does not
// recognise (spec.md §9: "the presence of unknown keys in the input is
// otherwise a fatal error").
type DenseTable struct {
	idx  *PerfectIndex
	aggs []Aggregate
	seen []bool
}

// NewDenseTable allocates a DenseTable over idx.
func NewDenseTable(idx *PerfectIndex) *DenseTable {
	return &DenseTable{
		idx:  idx,
		aggs: make([]Aggregate, idx.Size()),
		seen: make([]bool, idx.Size()),
	}
}

// Update records one observation for name. It returns an error if name is
// not part of the known corpus: the caller is expected to treat that as
// fatal (spec.md §9).
func (d *DenseTable) Update(name []byte, v Scaled10) error {
	i, ok := d.idx.Lookup(name)
	if !ok {
		return errors.Fatalf("unknown station %q under --known-stations", name)
	}
	if !d.seen[i] {
		d.seen[i] = true
		d.aggs[i].firstInsert(name, v)
		return nil
	}
	d.aggs[i].add(v)
	return nil
}

// Merge folds other into d componentwise, by slot.
func (d *DenseTable) Merge(other *DenseTable) {
	for i := range other.aggs {
		if !other.seen[i] {
			continue
		}
		if !d.seen[i] {
			d.seen[i] = true
			d.aggs[i] = other.aggs[i]
			continue
		}
		d.aggs[i].merge(&other.aggs[i])
	}
}

// ToStationTable converts the dense result to a general StationTable, so
// Format can consume either code path uniformly (spec.md §9: "the core's
// correctness property must hold under either strategy").
func (d *DenseTable) ToStationTable() *StationTable {
	t := NewStationTable(d.idx.Size())
	for i := range d.aggs {
		if d.seen[i] {
			t.mergeOne(&d.aggs[i])
		}
	}
	return t
}

// DiscoverStationNames scans every chunk concurrently, collecting the set
// of distinct station names present in the input into a lock-free
// xsync.MapOf (spec.md §9 discovery pre-pass). It is used to validate a
// corpus before committing to the known-station fast path, or to build an
// ad-hoc PerfectIndex when the station set is not known in advance but is
// small enough to discover up front.
func DiscoverStationNames(ctx context.Context, chunks [][]byte) ([]string, error) {
	seen := xsync.NewMapOf[string, struct{}]()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			pos := 0
			for pos < len(chunk) {
				semi := indexSemicolon(chunk, pos)
				nl := indexNewline(chunk, semi)
				seen.Store(string(chunk[pos:semi]), struct{}{})
				pos = nl + 1
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, seen.Size())
	seen.Range(func(k string, _ struct{}) bool {
		names = append(names, k)
		return true
	})
	return names, nil
}

func indexSemicolon(b []byte, from int) int {
	i := bytes.IndexByte(b[from:], ';')
	if i < 0 {
		panic("onebrc: malformed line, no ';' found")
	}
	return from + i
}

func indexNewline(b []byte, from int) int {
	start := from + 1 + minTempLen
	i := bytes.IndexByte(b[start:], '\n')
	if i < 0 {
		panic("onebrc: malformed line, no '\\n' found")
	}
	return start + i
}
