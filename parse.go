package size

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedNumber is reported when the numeric part of a size cannot be
	// parsed.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrUnknownUnit is reported when the unit suffix of a size is not
	// recognized.
	ErrUnknownUnit = errors.New("unknown unit")
)

// ParseError records a failed Parse. Err wraps ErrMalformedNumber or
// ErrUnknownUnit.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing size %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// splitNumber splits s after its right-most byte that is not an ASCII letter.
// Exponent markers only end up in the number when a non-letter follows them,
// which is what makes "423E-3mb" split into "423E-3" and "mb". Without any
// non-letter the whole string is the number.
func splitNumber(s string) (number, unit string) {
	i := len(s)
	for i > 0 && isASCIILetter(s[i-1]) {
		i--
	}

	if i == 0 {
		return s, ""
	}

	return strings.TrimRight(s[:i], " \t\n\v\f\r"), s[i:]
}

// Parse reads a human-written size such as "1234", "12.34 KB",
// "12.34 kIloByte", "1.5GiB" or "0.423e3kb". Units are matched
// case-insensitively by abbreviation or full name, with an optional plural
// "s"; a missing unit means bytes. The value is truncated toward zero to a
// whole number of bytes.
func Parse(text string) (Size, error) {
	number, suffix := splitNumber(strings.TrimSpace(text))

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Size{}, &ParseError{Input: text, Err: fmt.Errorf("%w: %q", ErrMalformedNumber, number)}
	}

	unit, err := ParseUnit(suffix)
	if err != nil {
		return Size{}, &ParseError{Input: text, Err: err}
	}

	return FromUnit(value, unit), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Size {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return s
}

// Set implements pflag.Value by parsing v.
func (s *Size) Set(v string) error {
	parsed, err := Parse(v)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// Type implements pflag.Value.
func (s *Size) Type() string {
	return "size"
}
