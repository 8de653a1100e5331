package size

import (
	"cmp"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is any primitive integer or floating-point type a Size can be built
// from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Size is a signed number of bytes. The zero value is zero bytes.
//
// Sizes are comparable with == and ordered by Compare; they are immutable and
// arithmetic returns new values.
type Size struct {
	bytes int64
}

// FromBytes returns a Size of exactly n bytes.
func FromBytes(n int64) Size {
	return Size{bytes: n}
}

// FromUnit returns a Size of v units. The multiplication happens before the
// result is truncated toward zero into the int64 byte count. Integer inputs are
// multiplied exactly; floating-point inputs are multiplied as float64. Results
// outside the int64 range saturate at math.MaxInt64 or math.MinInt64, and NaN
// becomes zero.
func FromUnit[T Number](v T, u Unit) Size {
	m := u.Multiplier()
	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive // constrained to numeric kinds
	case reflect.Float32, reflect.Float64:
		return Size{bytes: truncate(rv.Float() * float64(m))}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Size{bytes: mulUint(rv.Uint(), m)}
	default:
		return Size{bytes: mulInt(rv.Int(), m)}
	}
}

func mulInt(n, m int64) int64 {
	switch {
	case n > math.MaxInt64/m:
		return math.MaxInt64
	case n < math.MinInt64/m:
		return math.MinInt64
	default:
		return n * m
	}
}

func mulUint(n uint64, m int64) int64 {
	if n > uint64(math.MaxInt64/m) {
		return math.MaxInt64
	}

	return int64(n) * m
}

// truncate converts f to int64, rounding toward zero and saturating at the
// int64 bounds.
func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// FromKilobytes returns a Size of v kilobytes (1000 bytes).
func FromKilobytes[T Number](v T) Size { return FromUnit(v, Kilobyte) }

// FromMegabytes returns a Size of v megabytes (1000² bytes).
func FromMegabytes[T Number](v T) Size { return FromUnit(v, Megabyte) }

// FromGigabytes returns a Size of v gigabytes (1000³ bytes).
func FromGigabytes[T Number](v T) Size { return FromUnit(v, Gigabyte) }

// FromTerabytes returns a Size of v terabytes (1000⁴ bytes).
func FromTerabytes[T Number](v T) Size { return FromUnit(v, Terabyte) }

// FromPetabytes returns a Size of v petabytes (1000⁵ bytes).
func FromPetabytes[T Number](v T) Size { return FromUnit(v, Petabyte) }

// FromExabytes returns a Size of v exabytes (1000⁶ bytes).
func FromExabytes[T Number](v T) Size { return FromUnit(v, Exabyte) }

// FromKibibytes returns a Size of v kibibytes (1024 bytes).
func FromKibibytes[T Number](v T) Size { return FromUnit(v, Kibibyte) }

// FromMebibytes returns a Size of v mebibytes (1024² bytes).
func FromMebibytes[T Number](v T) Size { return FromUnit(v, Mebibyte) }

// FromGibibytes returns a Size of v gibibytes (1024³ bytes).
func FromGibibytes[T Number](v T) Size { return FromUnit(v, Gibibyte) }

// FromTebibytes returns a Size of v tebibytes (1024⁴ bytes).
func FromTebibytes[T Number](v T) Size { return FromUnit(v, Tebibyte) }

// FromPebibytes returns a Size of v pebibytes (1024⁵ bytes).
func FromPebibytes[T Number](v T) Size { return FromUnit(v, Pebibyte) }

// FromExbibytes returns a Size of v exbibytes (1024⁶ bytes).
func FromExbibytes[T Number](v T) Size { return FromUnit(v, Exbibyte) }

// Short aliases.

func FromKB[T Number](v T) Size  { return FromKilobytes(v) }
func FromMB[T Number](v T) Size  { return FromMegabytes(v) }
func FromGB[T Number](v T) Size  { return FromGigabytes(v) }
func FromTB[T Number](v T) Size  { return FromTerabytes(v) }
func FromPB[T Number](v T) Size  { return FromPetabytes(v) }
func FromEB[T Number](v T) Size  { return FromExabytes(v) }
func FromKiB[T Number](v T) Size { return FromKibibytes(v) }
func FromMiB[T Number](v T) Size { return FromMebibytes(v) }
func FromGiB[T Number](v T) Size { return FromGibibytes(v) }
func FromTiB[T Number](v T) Size { return FromTebibytes(v) }
func FromPiB[T Number](v T) Size { return FromPebibytes(v) }
func FromEiB[T Number](v T) Size { return FromExbibytes(v) }

// Bytes returns the exact byte count.
func (s Size) Bytes() int64 {
	return s.bytes
}

// In returns s expressed in unit u, e.g. FromKiB(1536).In(Mebibyte) == 1.5.
func (s Size) In(u Unit) float64 {
	return float64(s.bytes) / float64(u.Multiplier())
}

// IsZero reports whether s is zero bytes.
func (s Size) IsZero() bool {
	return s.bytes == 0
}

// Compare returns -1, 0 or +1 depending on whether s is smaller than, equal to
// or larger than other.
func (s Size) Compare(other Size) int {
	return cmp.Compare(s.bytes, other.bytes)
}

// Less reports whether s is smaller than other.
func (s Size) Less(other Size) bool {
	return s.bytes < other.bytes
}

// Equal reports whether s and other hold the same number of bytes.
func (s Size) Equal(other Size) bool {
	return s.bytes == other.bytes
}
