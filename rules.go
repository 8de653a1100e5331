package size

import (
	"math"
	"sort"
)

// formatRule is one magnitude bracket: byte counts below lessThan (and at or
// above the previous rule's lessThan) render in unit with precision decimals.
type formatRule struct {
	lessThan  uint64
	precision int
	unit      Unit
}

var (
	base10Rules = buildRules(Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte, Exabyte)
	base2Rules  = buildRules(Kibibyte, Mebibyte, Gibibyte, Tebibyte, Pebibyte, Exbibyte)
)

// buildRules lays out the 17 brackets of one base: whole bytes, then 2, 1 and
// 0 decimals for each unit below the largest, then a sentinel that renders
// everything else in the largest unit without decimals.
func buildRules(family ...Unit) []formatRule {
	rules := make([]formatRule, 0, 3*len(family)-1)
	rules = append(rules, formatRule{lessThan: uint64(family[0].Multiplier()), unit: Byte})

	for i, u := range family[:len(family)-1] {
		m := uint64(u.Multiplier())

		rules = append(rules,
			formatRule{lessThan: 10 * m, precision: 2, unit: u},
			formatRule{lessThan: 100 * m, precision: 1, unit: u},
			formatRule{lessThan: uint64(family[i+1].Multiplier()), precision: 0, unit: u},
		)
	}

	return append(rules, formatRule{lessThan: math.MaxUint64, unit: family[len(family)-1]})
}

func rulesFor(base Base) []formatRule {
	if base == Base10 {
		return base10Rules
	}

	return base2Rules
}

// classify returns the bracket for a non-negative byte count. Thresholds are
// exclusive upper bounds, so a count equal to a threshold lands in the next
// bracket: 1000 bytes in base 10 is "1.00 KB", not "1000 bytes".
func classify(bytes uint64, base Base) *formatRule {
	rules := rulesFor(base)

	i := sort.Search(len(rules), func(i int) bool {
		return bytes < rules[i].lessThan
	})
	if i == len(rules) {
		i--
	}

	return &rules[i]
}
