/*
Package generic provides the domain-agnostic primitives of the incentive engine.

PURPOSE:
  This package contains the money and tier types the incentive calculator is
  built from. Nothing here knows about NRV, ER, or any specific plan; the
  incentive package supplies the concrete targets and tables.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (e.g., ₹30000, 100 percent)
  - Unit: What an Amount measures
  - Percentage helpers used for achievement computation

DESIGN PRINCIPLES:
  1. Immutability: Amounts are values; every operation returns a new one
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Type Safety: Units travel with the value they describe

USAGE:
  incentive := generic.NewAmount(30000, generic.UnitINR)
  half := incentive.Div(decimal.NewFromInt(2))

SEE ALSO:
  - tier.go: Tier thresholds and immutable tier tables
  - errors.go: Centralized error types
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitINR     Unit = "INR"
	UnitPercent Unit = "percent"
)

var hundred = decimal.NewFromInt(100)

func NewAmount(value float64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}
}

func NewAmountFromInt(value int64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(value), Unit: unit}
}

func NewAmountFromDecimal(value decimal.Decimal, unit Unit) Amount {
	return Amount{Value: value, Unit: unit}
}

// ZeroAmount returns a zero quantity of the given unit.
func ZeroAmount(unit Unit) Amount {
	return Amount{Value: decimal.Zero, Unit: unit}
}

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (a Amount) Zero() Amount                 { return Amount{Value: decimal.Zero, Unit: a.Unit} }
func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s), Unit: a.Unit} }
func (a Amount) Div(s decimal.Decimal) Amount { return Amount{Value: a.Value.Div(s), Unit: a.Unit} }
func (a Amount) Neg() Amount                  { return Amount{Value: a.Value.Neg(), Unit: a.Unit} }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) IsPositive() bool             { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool    { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool       { return a.Value.LessThan(b.Value) }
func (a Amount) Equal(b Amount) bool          { return a.Unit == b.Unit && a.Value.Equal(b.Value) }

func (a Amount) Min(b Amount) Amount {
	if a.LessThan(b) {
		return a
	}
	return b
}

func (a Amount) Max(b Amount) Amount {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Float64 returns the value as a float for JSON transport.
func (a Amount) Float64() float64 {
	f, _ := a.Value.Float64()
	return f
}

// =============================================================================
// PERCENTAGES
// =============================================================================

// PercentOf returns 100 * actual / target as a percent Amount.
// A zero target is not a defined input; it yields zero rather than panicking.
func PercentOf(actual, target decimal.Decimal) Amount {
	if target.IsZero() {
		return ZeroAmount(UnitPercent)
	}
	return Amount{Value: actual.Mul(hundred).Div(target), Unit: UnitPercent}
}

// RatioExceeds reports whether part/whole is strictly greater than ratio.
// The comparison is done as part > whole*ratio so no rounding from division
// can move a value across the boundary. whole must be positive.
func RatioExceeds(part, whole, ratio decimal.Decimal) bool {
	if !whole.IsPositive() {
		return false
	}
	return part.GreaterThan(whole.Mul(ratio))
}
