package size

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrOutOfRange is reported when a serialized number does not fit in a Size.
var ErrOutOfRange = errors.New("size out of range")

// MarshalJSON encodes s as its integer byte count.
func (s Size) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, s.bytes, 10), nil
}

// UnmarshalJSON accepts an integer or floating-point byte count. A JSON
// string is parsed as a human-written size ("1.5 GiB").
func (s *Size) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}

		return s.Set(text)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("size: expected a number of bytes: %w", err)
	}

	v, err := fromNumberLiteral(n.String())
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// MarshalYAML encodes s as its integer byte count.
func (s Size) MarshalYAML() (interface{}, error) {
	return s.bytes, nil
}

// UnmarshalYAML accepts !!int and !!float byte counts and !!str human-written
// sizes.
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("size: line %d: expected a scalar", value.Line)
	}

	switch value.ShortTag() {
	case "!!int":
		var n int64
		if err := value.Decode(&n); err == nil {
			*s = FromBytes(n)

			return nil
		}

		var u uint64
		if err := value.Decode(&u); err != nil {
			return fmt.Errorf("size: line %d: %w", value.Line, err)
		}

		return fmt.Errorf("%w: unsigned %d", ErrOutOfRange, u)
	case "!!float":
		var f float64
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("size: line %d: %w", value.Line, err)
		}

		v, err := fromFloat(f)
		if err != nil {
			return err
		}

		*s = v

		return nil
	case "!!str":
		return s.Set(value.Value)
	default:
		return fmt.Errorf("size: line %d: unsupported tag %s", value.Line, value.ShortTag())
	}
}

// MarshalText encodes s as its exact byte count, which Parse reads back
// unchanged.
func (s Size) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, s.bytes, 10), nil
}

// UnmarshalText parses a human-written size.
func (s *Size) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// fromNumberLiteral converts a JSON number literal, keeping integers exact.
func fromNumberLiteral(lit string) (Size, error) {
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return FromBytes(n), nil
	}

	if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
		return Size{}, fmt.Errorf("%w: unsigned %d", ErrOutOfRange, u)
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Size{}, fmt.Errorf("size: %w", err)
	}

	return fromFloat(f)
}

func fromFloat(f float64) (Size, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return Size{}, fmt.Errorf("%w: float %g", ErrOutOfRange, f)
	}

	return FromBytes(truncate(f)), nil
}
