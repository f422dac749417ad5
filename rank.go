package bijrank

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter separates the major and minor segments of a rank.
const Delimiter = ':'

// filler is appended to a minor segment to move it past a boundary
// without ending in the zero symbol 'a'.
const filler = 'i'

// Rank is a two-part rank: a bijective base-26 major segment and an
// optional minor segment, written "major:minor".
//
// Ranks order by the numeric value of the major, then by the minor. The
// minor is read as a base-26 fraction whose zero digit is 'a', so it
// compares lexicographically once trailing 'a's are dropped: "b:" and "b:a"
// are equal, and "b:" sorts before "b:ai" which sorts before "b:b".
type Rank struct {
	major string
	minor string
	value int64 // decoded major
}

// Parse parses a rank of the form "major", "major:" or "major:minor".
// Both segments are normalized to lower case.
func Parse(s string) (Rank, error) {
	major, minor, _ := strings.Cut(s, string(Delimiter))
	v, err := Decode(major)
	if err != nil {
		return Rank{}, fmt.Errorf("invalid rank %q: %w", s, err)
	}
	if err := validMinor(minor); err != nil {
		return Rank{}, fmt.Errorf("invalid rank %q: %w", s, err)
	}
	return Rank{
		major: strings.ToLower(major),
		minor: strings.ToLower(minor),
		value: v,
	}, nil
}

// MustParse is like Parse but panics if s is not a valid rank.
func MustParse(s string) Rank {
	rk, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return rk
}

// NewRank creates a rank from a major value and a minor segment.
func NewRank(major int64, minor string) (Rank, error) {
	m, err := Encode(major)
	if err != nil {
		return Rank{}, err
	}
	if err := validMinor(minor); err != nil {
		return Rank{}, err
	}
	return Rank{major: m, minor: strings.ToLower(minor), value: major}, nil
}

// String returns the rank in its canonical "major:minor" form. The
// delimiter is always present, even when the minor is empty.
func (rk Rank) String() string {
	return rk.major + string(Delimiter) + rk.minor
}

// Major returns the major segment.
func (rk Rank) Major() string {
	return rk.major
}

// Minor returns the minor segment, which may be empty.
func (rk Rank) Minor() string {
	return rk.minor
}

// MajorValue returns the decoded value of the major segment.
func (rk Rank) MajorValue() int64 {
	return rk.value
}

// IsZero reports whether rk is the zero Rank rather than a parsed one.
func (rk Rank) IsZero() bool {
	return rk.major == ""
}

// Compare returns -1, 0 or +1 depending on whether rk sorts before, equal
// to or after other.
func (rk Rank) Compare(other Rank) int {
	switch {
	case rk.value < other.value:
		return -1
	case rk.value > other.value:
		return 1
	}
	return strings.Compare(trimMinor(rk.minor), trimMinor(other.minor))
}

// Less reports whether rk sorts before other.
func (rk Rank) Less(other Rank) bool {
	return rk.Compare(other) < 0
}

// Shift moves the major segment by delta and drops the minor.
func (rk Rank) Shift(delta int64) (Rank, error) {
	m, err := Shift(rk.major, delta)
	if err != nil {
		return Rank{}, err
	}
	return Parse(m)
}

// Float64Approx converts a rank to a float64: the major value plus the
// minor read as a base-26 fraction. Long minors lose precision, so this is
// only suitable for display and rough comparisons.
func (rk Rank) Float64Approx() float64 {
	rv := float64(rk.value)
	for i := 0; i < len(rk.minor); i++ {
		p := symbolValues[rk.minor[i]] - 1
		rv += float64(p) / math.Pow(float64(base), float64(i+1))
	}
	return rv
}

// MarshalText implements encoding.TextMarshaler.
func (rk Rank) MarshalText() ([]byte, error) {
	return []byte(rk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (rk *Rank) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*rk = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Rank.
func (rk Rank) MarshalYAML() (interface{}, error) {
	return rk.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Rank.
func (rk *Rank) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*rk = parsed
	return nil
}

// trimMinor drops trailing zero symbols, which do not change a minor's
// position in the ordering.
func trimMinor(minor string) string {
	return strings.TrimRight(minor, alphabet[:1])
}
