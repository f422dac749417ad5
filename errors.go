package bijrank

import "errors"

// Sentinel errors returned by the codec and the midpoint finder.
// Returned errors wrap one of these; classify them with errors.Is.
var (
	// ErrEmptyInput is returned when a numeral string is empty.
	ErrEmptyInput = errors.New("empty numeral")

	// ErrInvalidSymbol is returned when a string contains a character
	// outside the a-z alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrOutOfRange is returned when a value has no bijective
	// representation (less than 1) or does not fit in an int64.
	ErrOutOfRange = errors.New("value out of range")

	// ErrEqualRanks is returned when a rank between two equal ranks is
	// requested.
	ErrEqualRanks = errors.New("ranks are equal")
)
