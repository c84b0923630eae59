package ingest

import "github.com/cespare/xxhash/v2"

// Aggregate is the per-station running tuple (min, max, sum, count).
// Name is a borrowed slice into the FileMap, both for tables built by
// ChunkProcessor and for the known-station fast path's DenseTable
// (spec.md §3 "name").
type Aggregate struct {
	Name  []byte
	Min   Scaled10
	Max   Scaled10
	Sum   int64
	Count uint32
}

func (a *Aggregate) firstInsert(name []byte, v Scaled10) {
	if len(a.Name) != 0 {
		panic("onebrc: aggregate initialized twice")
	}
	a.Name = name
	a.Min = v
	a.Max = v
	a.Sum = int64(v)
	a.Count = 1
}

func (a *Aggregate) add(v Scaled10) {
	if v < a.Min {
		a.Min = v
	}
	if v > a.Max {
		a.Max = v
	}
	a.Sum += int64(v)
	a.Count++
}

// merge folds other into a componentwise: min, max, sum and count are all
// associative and commutative, so Reducer's merge order never matters
// (spec.md §4.6).
func (a *Aggregate) merge(other *Aggregate) {
	if other.Min < a.Min {
		a.Min = other.Min
	}
	if other.Max > a.Max {
		a.Max = other.Max
	}
	a.Sum += other.Sum
	a.Count += other.Count
}

// Mean returns the rounded-to-one-decimal mean in scaled-by-10 form,
// resolving spec.md's open question in favor of the integer-sum path
// with explicit round-half-away-from-zero (see SPEC_FULL.md §11).
func (a *Aggregate) Mean() Scaled10 {
	return roundScaled(float64(a.Sum) / float64(a.Count))
}

// StationTable maps a borrowed station-name byte slice to its Aggregate
// using open addressing with linear probing over an xxhash-hashed bucket
// index (spec.md §4.4 "third intermediate strategy"). update is
// allocation-free once the table has grown to its working size: the
// typical few-hundred-station corpus fits comfortably under the default
// initial capacity and growth happens, at most, a handful of times per
// worker.
type StationTable struct {
	buckets []entry
	mask    uint64
	count   int
}

type entry struct {
	used bool
	agg  Aggregate
}

// NewStationTable allocates a table sized for at least capacityHint
// distinct stations. A capacityHint around the expected cardinality (the
// reference dataset holds ~413 stations) keeps the load factor low enough
// that update's probe sequence stays cache-resident.
func NewStationTable(capacityHint int) *StationTable {
	size := nextPow2(capacityHint * 4)
	if size < 64 {
		size = 64
	}
	return &StationTable{
		buckets: make([]entry, size),
		mask:    uint64(size - 1),
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Update records one observation for name, inserting a fresh Aggregate if
// name has not been seen by this table before (spec.md §4.4 "update").
func (t *StationTable) Update(name []byte, v Scaled10) {
	if t.count*2 >= len(t.buckets) {
		t.grow()
	}

	h := xxhash.Sum64(name)
	idx := h & t.mask
	for {
		e := &t.buckets[idx]
		if !e.used {
			e.used = true
			e.agg.firstInsert(name, v)
			t.count++
			return
		}
		if bytesEqual(e.agg.Name, name) {
			e.agg.add(v)
			return
		}
		idx = (idx + 1) & t.mask
	}
}

func (t *StationTable) grow() {
	old := t.buckets
	t.buckets = make([]entry, len(old)*2)
	t.mask = uint64(len(t.buckets) - 1)
	t.count = 0
	for i := range old {
		if !old[i].used {
			continue
		}
		t.insertExisting(&old[i].agg)
	}
}

func (t *StationTable) insertExisting(a *Aggregate) {
	h := xxhash.Sum64(a.Name)
	idx := h & t.mask
	for t.buckets[idx].used {
		idx = (idx + 1) & t.mask
	}
	t.buckets[idx].used = true
	t.buckets[idx].agg = *a
	t.count++
}

// Merge folds every entry of other into t, by name (spec.md §4.4
// "merge"). other is left unmodified.
func (t *StationTable) Merge(other *StationTable) {
	for i := range other.buckets {
		if !other.buckets[i].used {
			continue
		}
		t.mergeOne(&other.buckets[i].agg)
	}
}

func (t *StationTable) mergeOne(a *Aggregate) {
	if t.count*2 >= len(t.buckets) {
		t.grow()
	}

	h := xxhash.Sum64(a.Name)
	idx := h & t.mask
	for {
		e := &t.buckets[idx]
		if !e.used {
			e.used = true
			e.agg = Aggregate{
				Name:  a.Name,
				Min:   a.Min,
				Max:   a.Max,
				Sum:   a.Sum,
				Count: a.Count,
			}
			t.count++
			return
		}
		if bytesEqual(e.agg.Name, a.Name) {
			e.agg.merge(a)
			return
		}
		idx = (idx + 1) & t.mask
	}
}

// Len returns the number of distinct stations currently held.
func (t *StationTable) Len() int {
	return t.count
}

// Each calls fn once per stored Aggregate, in unspecified order.
func (t *StationTable) Each(fn func(*Aggregate)) {
	for i := range t.buckets {
		if t.buckets[i].used {
			fn(&t.buckets[i].agg)
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
