package size

import (
	"fmt"
	"strings"
)

// Multipliers for the decimal (SI) units.
const (
	B  int64 = 1
	KB int64 = 1000 * B
	MB int64 = 1000 * KB
	GB int64 = 1000 * MB
	TB int64 = 1000 * GB
	PB int64 = 1000 * TB
	EB int64 = 1000 * PB
)

// Multipliers for the binary (IEC) units.
const (
	KiB int64 = 1 << 10
	MiB int64 = 1 << 20
	GiB int64 = 1 << 30
	TiB int64 = 1 << 40
	PiB int64 = 1 << 50
	EiB int64 = 1 << 60
)

// Unit is one of the byte units a Size can be expressed in.
type Unit int

// Supported units. Byte is shared by both bases.
const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
	Exabyte
	Kibibyte
	Mebibyte
	Gibibyte
	Tebibyte
	Pebibyte
	Exbibyte
)

type unitInfo struct {
	fullLower   string
	full        string
	abbrevLower string
	abbrev      string
	multiplier  int64
}

var units = [...]unitInfo{
	Byte: {"byte", "Byte", "b", "B", B},

	Kilobyte: {"kilobyte", "Kilobyte", "kb", "KB", KB},
	Megabyte: {"megabyte", "Megabyte", "mb", "MB", MB},
	Gigabyte: {"gigabyte", "Gigabyte", "gb", "GB", GB},
	Terabyte: {"terabyte", "Terabyte", "tb", "TB", TB},
	Petabyte: {"petabyte", "Petabyte", "pb", "PB", PB},
	Exabyte:  {"exabyte", "Exabyte", "eb", "EB", EB},

	Kibibyte: {"kibibyte", "Kibibyte", "kib", "KiB", KiB},
	Mebibyte: {"mebibyte", "Mebibyte", "mib", "MiB", MiB},
	Gibibyte: {"gibibyte", "Gibibyte", "gib", "GiB", GiB},
	Tebibyte: {"tebibyte", "Tebibyte", "tib", "TiB", TiB},
	Pebibyte: {"pebibyte", "Pebibyte", "pib", "PiB", PiB},
	Exbibyte: {"exbibyte", "Exbibyte", "eib", "EiB", EiB},
}

// Units returns all supported units, bytes first, then the decimal and the
// binary families in ascending order.
func Units() []Unit {
	all := make([]Unit, len(units))
	for i := range units {
		all[i] = Unit(i)
	}

	return all
}

// info returns the catalog entry for u. Out of range values map to Byte so the
// lookup is total.
func (u Unit) info() unitInfo {
	if u < Byte || int(u) >= len(units) {
		return units[Byte]
	}

	return units[u]
}

// Text returns the four spellings of the unit: full lowercase, full
// capitalized, abbreviated lowercase and abbreviated, e.g.
// ("kibibyte", "Kibibyte", "kib", "KiB").
func (u Unit) Text() (fullLower, full, abbrevLower, abbrev string) {
	i := u.info()

	return i.fullLower, i.full, i.abbrevLower, i.abbrev
}

// Multiplier returns the number of bytes in one u.
func (u Unit) Multiplier() int64 {
	return u.info().multiplier
}

// String returns the abbreviated spelling of the unit.
func (u Unit) String() string {
	return u.info().abbrev
}

// ParseUnit looks up a unit suffix the way Parse does: case-insensitive,
// abbreviated or full name, with one optional trailing "s". The empty string
// means bytes.
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(s), "s")

	if name == "" {
		return Byte, nil
	}

	for i, info := range units {
		if name == info.abbrevLower || name == info.fullLower {
			return Unit(i), nil
		}
	}

	return Byte, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}
