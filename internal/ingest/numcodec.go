package ingest

import "math"

// Scaled10 is a temperature reading scaled by 10 and stored as an integer,
// e.g. -15.7 is represented as -157. The input grammar guarantees exactly
// one fractional digit and a range of -99.9..=99.9, so the decode loop
// never branches on digit count and never checks for overflow.
type Scaled10 int16

// decodeTemp parses a byte slice matching -?[0-9]{1,2}\.[0-9] into a
// Scaled10. Behavior is undefined for input outside that grammar: the
// caller (ChunkProcessor) guarantees the slice came from a '\n'-terminated
// line whose single ';' already separated the station name.
func decodeTemp(b []byte) Scaled10 {
	neg := false
	i := 0
	if b[0] == '-' {
		neg = true
		i = 1
	}

	var val int16
	for ; i < len(b); i++ {
		c := b[i]
		if c == '.' {
			continue
		}
		val = val*10 + int16(c-'0')
	}

	if neg {
		val = -val
	}
	return Scaled10(val)
}

// formatTenths renders a Scaled10 with exactly one digit after the decimal
// point, e.g. -157 -> "-15.7". It does not allocate beyond the returned
// string's backing array.
func formatTenths(v Scaled10) string {
	neg := v < 0
	n := int(v)
	if neg {
		n = -n
	}

	whole := n / 10
	frac := n % 10

	buf := make([]byte, 0, 8)
	if neg {
		buf = append(buf, '-')
	}
	buf = appendInt(buf, whole)
	buf = append(buf, '.', byte('0'+frac))
	return string(buf)
}

// roundScaled rounds a mean expressed in tenths (e.g. sum/count where sum
// is already scaled by 10) to the nearest Scaled10, using round-half-away-
// from-zero so that scenario S1's Berlin mean (-2.85) prints as -2.9
// deterministically rather than depending on float formatting internals.
func roundScaled(tenths float64) Scaled10 {
	return Scaled10(math.Round(tenths))
}

func appendInt(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	// digits were appended least-significant-first; reverse them in place.
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
