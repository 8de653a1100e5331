//nolint:testpackage // rule tables are unexported
package size

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTables(t *testing.T) {
	for _, base := range []Base{Base2, Base10} {
		t.Run(base.String(), func(t *testing.T) {
			rules := rulesFor(base)

			require.Len(t, rules, 17)
			assert.Equal(t, Byte, rules[0].unit)
			assert.Equal(t, 0, rules[0].precision)

			for i := 1; i < len(rules); i++ {
				assert.Greater(t, rules[i].lessThan, rules[i-1].lessThan, "rule %d", i)
			}

			last := rules[len(rules)-1]
			assert.Equal(t, uint64(math.MaxUint64), last.lessThan)
			assert.Equal(t, 0, last.precision)

			// Every unit below the largest gets 2, 1 and 0 decimals in turn.
			for i := 1; i < len(rules)-1; i += 3 {
				assert.Equal(t, 2, rules[i].precision)
				assert.Equal(t, 1, rules[i+1].precision)
				assert.Equal(t, 0, rules[i+2].precision)
				assert.Equal(t, rules[i].unit, rules[i+2].unit)
			}
		})
	}

	assert.Equal(t, Exabyte, base10Rules[16].unit)
	assert.Equal(t, Exbibyte, base2Rules[16].unit)
}

func TestClassify(t *testing.T) {
	//nolint:govet // fieldalignment: test readability over optimization
	tests := []struct {
		name      string
		bytes     uint64
		base      Base
		unit      Unit
		precision int
	}{
		{name: "zero", bytes: 0, base: Base10, unit: Byte, precision: 0},
		{name: "just below kilobyte", bytes: 999, base: Base10, unit: Byte, precision: 0},
		{name: "exact kilobyte promotes", bytes: 1000, base: Base10, unit: Kilobyte, precision: 2},
		{name: "exact ten kilobytes", bytes: 10_000, base: Base10, unit: Kilobyte, precision: 1},
		{name: "exact hundred kilobytes", bytes: 100_000, base: Base10, unit: Kilobyte, precision: 0},
		{name: "exact megabyte", bytes: 1_000_000, base: Base10, unit: Megabyte, precision: 2},
		{name: "just below exabyte", bytes: uint64(EB) - 1, base: Base10, unit: Petabyte, precision: 0},
		{name: "exact exabyte", bytes: uint64(EB), base: Base10, unit: Exabyte, precision: 0},
		{name: "just below kibibyte", bytes: 1023, base: Base2, unit: Byte, precision: 0},
		{name: "exact kibibyte", bytes: 1024, base: Base2, unit: Kibibyte, precision: 2},
		{name: "mebibytes", bytes: 1_340_249, base: Base2, unit: Mebibyte, precision: 2},
		{name: "hundred gibibytes", bytes: 100 * uint64(GiB), base: Base2, unit: Gibibyte, precision: 0},
		{name: "int64 max", bytes: math.MaxInt64, base: Base2, unit: Exbibyte, precision: 0},
		{name: "uint64 max", bytes: math.MaxUint64, base: Base2, unit: Exbibyte, precision: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := classify(tt.bytes, tt.base)

			require.NotNil(t, rule)
			assert.Equal(t, tt.unit, rule.unit)
			assert.Equal(t, tt.precision, rule.precision)
		})
	}
}
