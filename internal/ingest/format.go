package ingest

import (
	"bytes"
	"sort"
	"strings"
)

// Format sorts t's stations lexicographically by name (byte-wise, spec.md
// §8.6) and writes the canonical output line: "{" then comma-space
// separated "name=min/mean/max" triples, then "}\n".
func Format(t *StationTable) string {
	names := make([][]byte, 0, t.Len())
	byName := make(map[string]*Aggregate, t.Len())

	t.Each(func(a *Aggregate) {
		names = append(names, a.Name)
		byName[string(a.Name)] = a
	})

	sort.Slice(names, func(i, j int) bool {
		return bytes.Compare(names[i], names[j]) < 0
	})

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		a := byName[string(name)]
		if i > 0 {
			b.WriteString(", ")
		}
		b.Write(name)
		b.WriteByte('=')
		b.WriteString(formatTenths(a.Min))
		b.WriteByte('/')
		b.WriteString(formatTenths(a.Mean()))
		b.WriteByte('/')
		b.WriteString(formatTenths(a.Max))
	}
	b.WriteString("}\n")

	return b.String()
}
