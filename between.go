package bijrank

import (
	"fmt"
	"math"
)

// Between returns a rank that sorts strictly between a and b. The
// arguments may be given in either order. Ranks take the "major:minor"
// form accepted by Parse; the result is always in canonical form.
//
// When the majors are at least two apart the result is their midpoint with
// an empty minor. Otherwise the result keeps the lower major and splits the
// minor segment, which can be extended indefinitely.
func Between(a, b string) (string, error) {
	ra, err := Parse(a)
	if err != nil {
		return "", err
	}
	rb, err := Parse(b)
	if err != nil {
		return "", err
	}
	low, high := ra, rb
	switch ra.Compare(rb) {
	case 0:
		return "", fmt.Errorf("%w: %s and %s", ErrEqualRanks, ra, rb)
	case 1:
		low, high = rb, ra
	}
	return between(low, high).String(), nil
}

// NRanksBetween returns n ranks in ascending order, all strictly between a
// and b. The arguments may be given in either order.
func NRanksBetween(a, b string, n uint) ([]string, error) {
	if n == 0 {
		return []string{}, nil
	}
	ra, err := Parse(a)
	if err != nil {
		return nil, err
	}
	rb, err := Parse(b)
	if err != nil {
		return nil, err
	}
	if rb.Less(ra) {
		a, b = b, a
	}
	c, err := Between(a, b)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return []string{c}, nil
	}
	mid := n / 2
	result := make([]string, 0, n)
	{
		r, err := NRanksBetween(a, c, mid)
		if err != nil {
			return nil, err
		}
		result = append(result, r...)
	}
	result = append(result, c)
	{
		r, err := NRanksBetween(c, b, n-mid-1)
		if err != nil {
			return nil, err
		}
		result = append(result, r...)
	}
	return result, nil
}

// low must sort strictly before high.
func between(low, high Rank) Rank {
	if high.value-low.value >= 2 {
		v := low.value + (high.value-low.value)/2
		return Rank{major: encode(v), value: v}
	}

	c := Rank{
		major: low.major,
		minor: minorBetween(low.minor, high.minor),
		value: low.value,
	}
	if low.Less(c) && c.Less(high) {
		return c
	}

	// The numeric split only works while minors stay short. Past that,
	// split digit by digit; with adjacent majors the minor is unbounded
	// above.
	upper := ""
	if low.value == high.value {
		upper = trimMinor(high.minor)
	}
	c.minor = midpoint(trimMinor(low.minor), upper)
	return c
}

// minorBetween splits the numeric range between two minor segments. A
// missing lower minor counts as "a" and a missing upper minor as "z". With
// no room left it extends the lower minor with the filler symbol.
func minorBetween(lowMinor, highMinor string) string {
	lo, err := Decode(orDefault(lowMinor, alphabet[:1]))
	if err != nil {
		return lowMinor + string(filler)
	}
	hi, err := Decode(orDefault(highMinor, alphabet[len(alphabet)-1:]))
	if err != nil {
		return lowMinor + string(filler)
	}
	if hi-lo < 2 {
		return lowMinor + string(filler)
	}
	m := encode(lo + (hi-lo)/2)
	// "x" and "xa" hold the same position, never emit the latter
	if m[len(m)-1] == alphabet[0] {
		m += string(filler)
	}
	return m
}

// midpoint returns a minor segment strictly between a and b, read as
// base-26 fractions with 'a' as the zero digit.
// `a < b` lexicographically if `b` is non-empty.
// a == "" means the smallest minor.
// b == "" means no upper bound.
// Neither may end in 'a', and neither does the result.
func midpoint(a string, b string) string {
	if b != "" {
		// remove longest common prefix, padding `a` with zero digits
		i := 0
		for ; i < len(b); i++ {
			c := alphabet[0]
			if len(a) > i {
				c = a[i]
			}
			if c != b[i] {
				break
			}
		}
		if i > 0 {
			if i > len(a) {
				return b[0:i] + midpoint("", b[i:])
			}
			return b[0:i] + midpoint(a[i:], b[i:])
		}
	}

	// first digits (or lack of digit) are different
	digitA := 0
	if a != "" {
		digitA = digit(a[0])
	}
	digitB := len(alphabet)
	if b != "" {
		digitB = digit(b[0])
	}
	if digitB-digitA > 1 {
		midDigit := int(math.Round(0.5 * float64(digitA+digitB)))
		return string(alphabet[midDigit])
	}

	// first digits are consecutive
	if len(b) > 1 {
		return b[0:1]
	}

	// `b` is empty or a single digit right after a's first digit: keep
	// a's first digit and go past the rest of `a` with no upper bound.
	sa := ""
	if len(a) > 0 {
		sa = a[1:]
	}
	return string(alphabet[digitA]) + midpoint(sa, "")
}

// digit returns the fractional digit (0..25) of a lowercase symbol.
func digit(c byte) int {
	return int(symbolValues[c] - 1)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
