package ingest

// Reduce merges a set of per-worker StationTables into one combined
// table, equivalent to having run the sequential algorithm over the whole
// input (spec.md §4.6). Merge is associative and commutative, so the
// order tables are folded in never matters; reduction is intentionally
// sequential — it sits off the critical path for large inputs, which are
// dominated by ingest, not merge.
func Reduce(tables []*StationTable) *StationTable {
	if len(tables) == 0 {
		return NewStationTable(0)
	}

	combined := tables[0]
	for _, t := range tables[1:] {
		combined.Merge(t)
	}
	return combined
}
