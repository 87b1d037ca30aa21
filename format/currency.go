/*
Package format renders incentive figures the way the calculator UI shows them.

CURRENCY:
  Indian Rupee, two decimals, en-IN digit grouping: the last three integer
  digits form one group and the rest are grouped in pairs (lakh/crore).

    7500        -> ₹7,500.00
    3000000     -> ₹30,00,000.00
    123456789.9 -> ₹12,34,56,789.90
    -7500       -> -₹7,500.00

  Rounding is half away from zero at the second decimal.

PERCENT:
  Two decimals followed by "%": 100 -> "100.00%".
  A negative value keeps its sign even when it rounds to zero: "-0.00%".

TIER:
  Whole number followed by "%": 100 -> "100%".
*/
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/incentive-engine/generic"
)

const rupee = "₹"

// Currency renders d as an en-IN rupee string.
func Currency(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(rupee)
	b.WriteString(GroupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Amount renders a monetary Amount.
func Amount(a generic.Amount) string {
	return Currency(a.Value)
}

// GroupIndian inserts en-IN thousands separators into a string of digits.
func GroupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head, tail := digits[:n-3], digits[n-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// Percent renders a percentage with two decimals.
func Percent(a generic.Amount) string {
	fixed := a.Value.StringFixed(2)
	if a.Value.IsNegative() && !strings.HasPrefix(fixed, "-") {
		fixed = "-" + fixed
	}
	return fixed + "%"
}

// Tier renders a tier threshold.
func Tier(t generic.Tier) string {
	return strconv.Itoa(int(t)) + "%"
}
