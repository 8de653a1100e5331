package size

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Base selects the unit family used when formatting.
//
// Values other than the declared constants are treated as Base2.
type Base int

const (
	// Base2 formats with binary units (KiB, MiB, ...).
	Base2 Base = iota
	// Base10 formats with decimal units (KB, MB, ...).
	Base10
)

var baseNames = map[Base]string{
	Base2:  "base2",
	Base10: "base10",
}

// String implements fmt.Stringer.
func (b Base) String() string {
	if name, ok := baseNames[b]; ok {
		return name
	}

	return fmt.Sprintf("Base(%d)", int(b))
}

// ParseBase parses "base2"/"2"/"binary" or "base10"/"10"/"decimal".
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base2", "2", "binary", "iec":
		return Base2, nil
	case "base10", "10", "decimal", "si":
		return Base10, nil
	default:
		return Base2, fmt.Errorf("unknown base: %q", s)
	}
}

// Set implements pflag.Value.
func (b *Base) Set(s string) error {
	v, err := ParseBase(s)
	if err != nil {
		return err
	}

	*b = v

	return nil
}

// Type implements pflag.Value.
func (b *Base) Type() string {
	return "base"
}

// Style controls how the unit of a formatted size is spelled.
//
// Values other than the declared constants are treated as Default.
type Style int

const (
	// Default is FullLowercase for byte counts and Abbreviated otherwise,
	// e.g. "12 bytes" and "1.28 MiB".
	Default Style = iota
	// Abbreviated renders "KiB", "MB", "B".
	Abbreviated
	// AbbreviatedLowercase renders "kib", "mb", "b".
	AbbreviatedLowercase
	// Full renders "Kibibytes", "Megabytes", "Byte".
	Full
	// FullLowercase renders "kibibytes", "megabytes", "byte".
	FullLowercase
)

var styleNames = map[Style]string{
	Default:              "default",
	Abbreviated:          "abbreviated",
	AbbreviatedLowercase: "abbreviated-lowercase",
	Full:                 "full",
	FullLowercase:        "full-lowercase",
}

// String implements fmt.Stringer.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses a style name as returned by Style.String. Underscores and
// the compact "abbreviatedlowercase" spelling are accepted too.
func ParseStyle(s string) (Style, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")

	for style, styleName := range styleNames {
		if name == styleName || name == strings.ReplaceAll(styleName, "-", "") {
			return style, nil
		}
	}

	return Default, fmt.Errorf("unknown style: %q", s)
}

// Set implements pflag.Value.
func (s *Style) Set(v string) error {
	style, err := ParseStyle(v)
	if err != nil {
		return err
	}

	*s = style

	return nil
}

// Type implements pflag.Value.
func (s *Style) Type() string {
	return "style"
}

// unitText renders the unit part of a formatted size. number is the already
// rendered numeric part; only an exact "1" takes the singular form.
func unitText(u Unit, number string, style Style) string {
	fullLower, full, abbrevLower, abbrev := u.Text()

	switch style {
	case Abbreviated:
		return abbrev
	case AbbreviatedLowercase:
		return abbrevLower
	case Full:
		if number == "1" {
			return full
		}

		return full + "s"
	case FullLowercase:
		if number == "1" {
			return fullLower
		}

		return fullLower + "s"
	default:
		if u == Byte {
			return unitText(u, number, FullLowercase)
		}

		return unitText(u, number, Abbreviated)
	}
}

// Formatter renders raw byte counts as human-readable text. The zero value
// is not ready to use; start from NewFormatter.
type Formatter struct {
	base  Base
	style Style
	scale int
}

// NewFormatter returns a formatter using Base2, the Default style and the
// per-magnitude precision.
func NewFormatter() Formatter {
	return Formatter{
		base:  Base2,
		style: Default,
		scale: -1,
	}
}

// WithBase returns a copy of f that formats in base.
func (f Formatter) WithBase(base Base) Formatter {
	f.base = base

	return f
}

// WithStyle returns a copy of f that spells units in style.
func (f Formatter) WithStyle(style Style) Formatter {
	f.style = style

	return f
}

// WithScale returns a copy of f that renders n decimal digits for every
// magnitude above plain bytes. A negative n restores the per-magnitude
// precision (2, 1 or 0 digits).
func (f Formatter) WithScale(n int) Formatter {
	if n < 0 {
		n = -1
	}

	f.scale = n

	return f
}

// Base returns the configured base.
func (f Formatter) Base() Base { return f.base }

// Style returns the configured style.
func (f Formatter) Style() Style { return f.style }

// Format renders bytes, e.g. 1340249 -> "1.28 MiB".
func (f Formatter) Format(bytes int64) string {
	var sb strings.Builder

	var magnitude uint64

	switch {
	case bytes >= 0:
		magnitude = uint64(bytes)
	case bytes == math.MinInt64:
		// -MinInt64 does not fit in an int64; report the largest magnitude
		// that does.
		sb.WriteByte('-')

		magnitude = math.MaxInt64
	default:
		sb.WriteByte('-')

		magnitude = uint64(-bytes)
	}

	rule := classify(magnitude, f.base)

	var number string

	if rule.unit == Byte {
		number = strconv.FormatUint(magnitude, 10)
	} else {
		precision := rule.precision
		if f.scale >= 0 {
			precision = f.scale
		}

		value := float64(magnitude) / float64(rule.unit.Multiplier())
		number = strconv.FormatFloat(value, 'f', precision, 64)
	}

	sb.WriteString(number)
	sb.WriteByte(' ')
	sb.WriteString(unitText(rule.unit, number, f.style))

	return sb.String()
}

// Format renders s in the given base and style.
func (s Size) Format(base Base, style Style) string {
	return NewFormatter().WithBase(base).WithStyle(style).Format(s.bytes)
}

// String renders s with Base2 units in the Default style.
func (s Size) String() string {
	return NewFormatter().Format(s.bytes)
}
