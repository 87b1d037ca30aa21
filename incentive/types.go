/*
Package incentive computes sales-incentive payouts.

PURPOSE:
  A sales employee is measured on two metrics against fixed targets:
  NRV (revenue) and ER (earnings rate). Each metric resolves to an
  achievement tier that pays a fixed amount, and ER can unlock a
  new-customer booster. The whole payout is gated on the S.I.H. condition.

FLOW:
  Input -> validate -> gate on S.I.H. -> percentages -> tiers
        -> per-metric incentives -> booster -> totals -> Result

KEY TYPES:
  Input:  What the caller supplies per calculation
  Result: Every figure the caller needs to render a payout
  Plan:   Targets, tier tables and booster rule (see plan.go)

OUTCOMES:
  error (InvalidInputError): new-customer ER exceeds total ER; no result
  StatusConditionNotMet:     S.I.H. not met; all figures are zero
  StatusCalculated:          full result

SEE ALSO:
  - plan.go: Fixed targets and tier tables
  - calculator.go: The calculation
  - format/: Presentation of a Result
*/
package incentive

import (
	"github.com/shopspring/decimal"

	"github.com/warp/incentive-engine/generic"
)

// Metric identifies one of the two achievement metrics.
type Metric string

const (
	MetricNRV Metric = "nrv"
	MetricER  Metric = "er"
)

// Input is the per-calculation input.
type Input struct {
	RevenueActual        decimal.Decimal // NRV achieved
	EarningsActual       decimal.Decimal // ER achieved
	EarningsNewCustomers decimal.Decimal // portion of ER from new customers
	ConditionMet         bool            // S.I.H. condition
}

// Status tells the caller which state to render.
type Status string

const (
	StatusCalculated      Status = "calculated"
	StatusConditionNotMet Status = "condition_not_met"
)

// Result is the outcome of a calculation that passed validation.
//
// FinalTier is the lower of RevenueTier and EarningsTier and is reported
// only. The paid incentives use each metric's own tier.
type Result struct {
	Status Status

	RevenuePercent  generic.Amount
	EarningsPercent generic.Amount

	RevenueTier  generic.Tier
	EarningsTier generic.Tier
	FinalTier    generic.Tier

	RevenueIncentive  generic.Amount
	EarningsIncentive generic.Amount
	BoosterIncentive  generic.Amount
	TotalIncentive    generic.Amount

	PayoutInstallment1 generic.Amount
	PayoutInstallment2 generic.Amount
}

// Calculated reports whether the result carries payout figures.
func (r Result) Calculated() bool {
	return r.Status == StatusCalculated
}

// zeroResult is the result for a given status with every figure zero.
func zeroResult(status Status) Result {
	zero := generic.ZeroAmount(UnitINR)
	pct := generic.ZeroAmount(generic.UnitPercent)
	return Result{
		Status:             status,
		RevenuePercent:     pct,
		EarningsPercent:    pct,
		RevenueIncentive:   zero,
		EarningsIncentive:  zero,
		BoosterIncentive:   zero,
		TotalIncentive:     zero,
		PayoutInstallment1: zero,
		PayoutInstallment2: zero,
	}
}

// UnitINR is the single payout currency.
const UnitINR = generic.UnitINR
