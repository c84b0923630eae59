package ingest

import (
	"fmt"
	"testing"

	"github.com/rowcrunch/onebrc/internal/rtest"
)

func TestDecodeTemp(t *testing.T) {
	cases := []struct {
		in   string
		want Scaled10
	}{
		{"10.0", 100},
		{"-12.7", -127},
		{"21.5", 215},
		{"-15.7", -157},
		{"0.0", 0},
		{"-99.9", -999},
		{"99.9", 999},
		{"6.6", 66},
		{"-1.0", -10},
	}
	for _, c := range cases {
		got := decodeTemp([]byte(c.in))
		rtest.Equals(t, c.want, got)
	}
}

func TestFormatTenths(t *testing.T) {
	cases := []struct {
		in   Scaled10
		want string
	}{
		{100, "10.0"},
		{-127, "-12.7"},
		{0, "0.0"},
		{-999, "-99.9"},
		{999, "99.9"},
		{-10, "-1.0"},
	}
	for _, c := range cases {
		rtest.Equals(t, c.want, formatTenths(c.in))
	}
}

// TestCodecRoundTrip is spec.md §8 property 5: for every value in
// {-99.9, ..., 99.9}, decoding the formatted value reproduces it.
func TestCodecRoundTrip(t *testing.T) {
	for v := -999; v <= 999; v++ {
		s := formatTenths(Scaled10(v))
		got := decodeTemp([]byte(s))
		rtest.Assert(t, got == Scaled10(v), "round-trip failed for %d: formatted %q, decoded %d", v, s, got)
	}
}

func TestRoundScaled(t *testing.T) {
	cases := []struct {
		sum   int64
		count uint32
		want  Scaled10
	}{
		// Berlin in seed scenario S1: (-157 + 100) / 2 = -28.5 tenths -> -2.85 in
		// decimal, rounds half-away-from-zero to -2.9.
		{-57, 2, -29},
		{100, 1, 100},
	}
	for _, c := range cases {
		a := Aggregate{Sum: c.sum, Count: c.count}
		rtest.Equals(t, c.want, a.Mean())
	}
}

func Example_decodeTemp() {
	fmt.Println(decodeTemp([]byte("-15.7")))
	// Output: -157
}
