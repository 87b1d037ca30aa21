/*
tier.go - Achievement tiers and immutable tier tables

PURPOSE:
  A tier is an achievement threshold expressed in whole percent (50, 75, 100,
  ...). A TierTable maps an ascending sequence of tiers to fixed amounts and
  resolves an achievement percentage to the tier it qualifies for.

RESOLUTION RULE:
  The applicable tier is the LARGEST threshold that is <= percent.
  Below the smallest threshold the tier is 0 (TierNone), which always maps
  to a zero amount. There is no interpolation between tiers.

    thresholds: 50, 75, 100, 110, 120, 150
    49.99  -> 0
    50     -> 50
    149.99 -> 120
    150    -> 150
    400    -> 150

IMMUTABILITY:
  TierTable keeps its entries in an unexported slice and hands out copies.
  Build one with NewTierTable (validating) or MustTierTable (for package
  level constants) and share it freely across goroutines.

SEE ALSO:
  - incentive/plan.go: The NRV and ER tables
  - errors.go: ErrInvalidTierTable
*/
package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is an achievement threshold in whole percent.
type Tier int

// TierNone means no threshold was reached.
const TierNone Tier = 0

// Percent returns the tier threshold as a decimal percentage.
func (t Tier) Percent() decimal.Decimal {
	return decimal.NewFromInt(int64(t))
}

// MinTier returns the lower of two tiers, compared by tier value.
func MinTier(a, b Tier) Tier {
	if a < b {
		return a
	}
	return b
}

// TierEntry pairs a threshold with the amount it pays.
type TierEntry struct {
	Tier   Tier
	Amount Amount
}

// TierTable is an ordered, immutable tier -> amount mapping.
type TierTable struct {
	unit    Unit
	entries []TierEntry
}

// NewTierTable builds a table from entries given in ascending order.
// Thresholds must be positive and strictly ascending, and every amount must
// share the table unit.
func NewTierTable(unit Unit, entries ...TierEntry) (TierTable, error) {
	if len(entries) == 0 {
		return TierTable{}, fmt.Errorf("%w: no tiers", ErrInvalidTierTable)
	}

	prev := TierNone
	for i, e := range entries {
		if e.Tier <= prev {
			return TierTable{}, fmt.Errorf("%w: tier %d at position %d is not above %d",
				ErrInvalidTierTable, e.Tier, i, prev)
		}
		if e.Amount.Unit != unit {
			return TierTable{}, fmt.Errorf("%w: tier %d has unit %q, want %q",
				ErrInvalidTierTable, e.Tier, e.Amount.Unit, unit)
		}
		prev = e.Tier
	}

	copied := make([]TierEntry, len(entries))
	copy(copied, entries)
	return TierTable{unit: unit, entries: copied}, nil
}

// MustTierTable is NewTierTable for tables defined at package level.
func MustTierTable(unit Unit, entries ...TierEntry) TierTable {
	t, err := NewTierTable(unit, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the largest tier whose threshold is <= percent, or TierNone.
func (t TierTable) Resolve(percent decimal.Decimal) Tier {
	resolved := TierNone
	for _, e := range t.entries {
		if percent.LessThan(e.Tier.Percent()) {
			break
		}
		resolved = e.Tier
	}
	return resolved
}

// AmountFor returns the amount paid at tier. Tiers not in the table,
// including TierNone, pay zero.
func (t TierTable) AmountFor(tier Tier) Amount {
	for _, e := range t.entries {
		if e.Tier == tier {
			return e.Amount
		}
	}
	return ZeroAmount(t.unit)
}

// Thresholds returns the tiers in ascending order.
func (t TierTable) Thresholds() []Tier {
	tiers := make([]Tier, len(t.entries))
	for i, e := range t.entries {
		tiers[i] = e.Tier
	}
	return tiers
}

// Entries returns a copy of the table entries.
func (t TierTable) Entries() []TierEntry {
	out := make([]TierEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t TierTable) Unit() Unit { return t.unit }
func (t TierTable) Len() int   { return len(t.entries) }

// SameThresholds reports whether two tables resolve on identical thresholds.
func (t TierTable) SameThresholds(other TierTable) bool {
	if len(t.entries) != len(other.entries) {
		return false
	}
	for i := range t.entries {
		if t.entries[i].Tier != other.entries[i].Tier {
			return false
		}
	}
	return true
}
