// Package bijrank generates sortable rank strings using bijective base-26
// numeration, so that a new item can always be ranked between two existing
// ones without renumbering the rest of a collection.
package bijrank

import (
	"fmt"
	"math"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

const base = int64(len(alphabet))

// symbolValues maps a byte to its bijective digit value (1..26), 0 if the
// byte is not a symbol. Upper case is accepted on input.
var symbolValues = func() [256]int64 {
	var t [256]int64
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int64(i + 1)
		t[alphabet[i]-'a'+'A'] = int64(i + 1)
	}
	return t
}()

// Decode returns the integer value of a bijective base-26 string, where
// 'a' is 1, 'z' is 26 and "aa" is 27. Decoding is case insensitive.
func Decode(s string) (int64, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}
	var v int64
	for i := 0; i < len(s); i++ {
		d := symbolValues[s[i]]
		if d == 0 {
			return 0, fmt.Errorf("%w %q in %q", ErrInvalidSymbol, s[i], s)
		}
		if v > (math.MaxInt64-d)/base {
			return 0, fmt.Errorf("%w: %q overflows int64", ErrOutOfRange, s)
		}
		v = v*base + d
	}
	return v, nil
}

// Encode returns the lowercase bijective base-26 representation of n.
// n must be at least 1.
func Encode(n int64) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: cannot encode %d", ErrOutOfRange, n)
	}
	return encode(n), nil
}

// encode is Encode for n >= 1.
func encode(n int64) string {
	// 14 symbols cover math.MaxInt64
	digs := make([]byte, 0, 14)
	for n > 0 {
		n--
		digs = append(digs, alphabet[n%base])
		n /= base
	}
	reverse(digs)
	return string(digs)
}

// Shift adds delta (which may be negative) to the value of rank and returns
// the encoded result.
func Shift(rank string, delta int64) (string, error) {
	v, err := Decode(rank)
	if err != nil {
		return "", err
	}
	if delta > 0 && v > math.MaxInt64-delta {
		return "", fmt.Errorf("%w: %q%+d overflows int64", ErrOutOfRange, rank, delta)
	}
	return Encode(v + delta)
}

// validMinor reports an error if s contains anything but alphabet symbols.
// An empty minor is valid.
func validMinor(s string) error {
	for i := 0; i < len(s); i++ {
		if symbolValues[s[i]] == 0 {
			return fmt.Errorf("%w %q in minor %q", ErrInvalidSymbol, s[i], s)
		}
	}
	return nil
}

func reverse[T any](values []T) {
	for i := 0; i < len(values)/2; i++ {
		j := len(values) - i - 1
		values[i], values[j] = values[j], values[i]
	}
}
