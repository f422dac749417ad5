package bijrank

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	test := func(n int64, exp string) {
		act, err := Encode(n)
		assert.NoError(err)
		assert.Equal(exp, act, "Encode(%d)", n)
	}

	test(1, "a")
	test(10, "j")
	test(26, "z")
	test(27, "aa")
	test(52, "az")
	test(53, "ba")
	test(702, "zz")
	test(703, "aaa")
	test(729, "aba")
	test(739, "abk")
	test(18278, "zzz")
	test(18279, "aaaa")

	for _, n := range []int64{0, -1, math.MinInt64} {
		act, err := Encode(n)
		assert.Equal("", act)
		assert.ErrorIs(err, ErrOutOfRange)
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	test := func(s string, exp int64) {
		act, err := Decode(s)
		assert.NoError(err)
		assert.Equal(exp, act, "Decode(%q)", s)
	}

	test("a", 1)
	test("z", 26)
	test("aa", 27)
	test("aaa", 703)
	test("aba", 729)
	test("abk", 739)
	test("ABK", 739)
	test("aBa", 729)

	testErr := func(s string, exp error) {
		act, err := Decode(s)
		assert.Equal(int64(0), act)
		assert.ErrorIs(err, exp, "Decode(%q)", s)
	}

	testErr("", ErrEmptyInput)
	testErr("a0", ErrInvalidSymbol)
	testErr("0", ErrInvalidSymbol)
	testErr("9", ErrInvalidSymbol)
	testErr("a:b", ErrInvalidSymbol)
	testErr("é", ErrInvalidSymbol)
	testErr(" a", ErrInvalidSymbol)
	testErr(strings.Repeat("z", 14), ErrOutOfRange)
}

func TestDecodeErrorMessage(t *testing.T) {
	_, err := Decode("ab0")
	require.Error(t, err)
	assert.Equal(t, `invalid symbol '0' in "ab0"`, err.Error())
}

func TestCodecLimits(t *testing.T) {
	s, err := Encode(math.MaxInt64)
	require.NoError(t, err)
	assert.Len(t, s, 14)

	v, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)

	next, err := Shift(s, 1)
	assert.Equal(t, "", next)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRoundTripValues(t *testing.T) {
	for n := int64(1); n <= 100000; n++ {
		s, err := Encode(n)
		if err != nil {
			t.Fatalf("Encode(%d) failed: %v", n, err)
		}
		v, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", s, err)
		}
		if v != n {
			t.Fatalf("Decode(Encode(%d)) = %d", n, v)
		}
	}
}

func TestRoundTripStrings(t *testing.T) {
	// every string of up to three symbols
	var all []string
	prev := []string{""}
	for length := 1; length <= 3; length++ {
		next := make([]string, 0, len(prev)*len(alphabet))
		for _, p := range prev {
			for i := 0; i < len(alphabet); i++ {
				next = append(next, p+alphabet[i:i+1])
			}
		}
		all = append(all, next...)
		prev = next
	}
	require.Len(t, all, 26+26*26+26*26*26)

	for i, s := range all {
		v, err := Decode(s)
		require.NoError(t, err)
		// enumeration order is numeric order
		require.Equal(t, int64(i+1), v, s)

		enc, err := Encode(v)
		require.NoError(t, err)
		require.Equal(t, s, enc)

		v, err = Decode(strings.ToUpper(s))
		require.NoError(t, err)
		enc, err = Encode(v)
		require.NoError(t, err)
		require.Equal(t, s, enc, "upper case input must encode back to lower case")
	}
}

func TestEncodeMonotonic(t *testing.T) {
	prev, err := Encode(1)
	require.NoError(t, err)
	for n := int64(2); n <= 50000; n++ {
		cur, err := Encode(n)
		require.NoError(t, err)
		switch {
		case len(cur) < len(prev):
			t.Fatalf("Encode(%d) = %q is shorter than Encode(%d) = %q", n, cur, n-1, prev)
		case len(cur) == len(prev) && cur <= prev:
			t.Fatalf("Encode(%d) = %q does not sort after Encode(%d) = %q", n, cur, n-1, prev)
		case len(cur) > len(prev) && cur != strings.Repeat("a", len(cur)):
			t.Fatalf("Encode(%d) = %q should start a new length at all 'a'", n, cur)
		}
		prev = cur
	}
}

func TestShift(t *testing.T) {
	assert := assert.New(t)

	test := func(rank string, delta int64, exp string) {
		act, err := Shift(rank, delta)
		assert.NoError(err)
		assert.Equal(exp, act, "Shift(%q, %d)", rank, delta)
	}

	test("aaa", 10, "aak")
	test("aaz", 10, "abj")
	test("aaa", 36, "abk")
	test("aaa", 686, "bak")
	test("aak", -10, "aaa")
	test("aa", -1, "z")
	test("b", -1, "a")
	test("AAA", 0, "aaa")

	testErr := func(rank string, delta int64, exp error) {
		act, err := Shift(rank, delta)
		assert.Equal("", act)
		assert.ErrorIs(err, exp, "Shift(%q, %d)", rank, delta)
	}

	testErr("a", -1, ErrOutOfRange)
	testErr("z", -100, ErrOutOfRange)
	testErr("a", math.MinInt64, ErrOutOfRange)
	testErr("", 1, ErrEmptyInput)
	testErr("a1", 1, ErrInvalidSymbol)
}

func TestShiftChain(t *testing.T) {
	assert := assert.New(t)

	rank := "aaa"
	steps := []struct {
		delta int64
		exp   string
	}{
		{20, "aau"},
		{20, "abo"},
		{20, "aci"},
		{676, "bci"},
		{26, "bdi"},
		{17576, "abdi"},
	}
	for _, step := range steps {
		next, err := Shift(rank, step.delta)
		assert.NoError(err)
		assert.Equal(step.exp, next)
		rank = next
	}
}
