/*
calculator.go - Incentive calculation

PURPOSE:
  Turns an Input into a Result using a Plan. Pure: no I/O, no shared
  mutable state. A Calculator can be shared across goroutines.

STEPS (in order):
  1. Reject new-customer ER above ER actual (InvalidInputError)
  2. S.I.H. not met -> StatusConditionNotMet, all figures zero
  3. Percentages: 100 * actual / target
  4. Resolve each metric's tier
  5. FinalTier = min(NRV tier, ER tier), reported only
  6. Each metric's incentive from its OWN tier
  7. Booster when new-customer ratio is strictly above the threshold
  8. Total and two equal installments

NEGATIVE INPUTS:
  Not rejected. They produce negative percentages, tier 0, and no booster.

EXAMPLE:
  result, err := incentive.Calculate(incentive.Input{
      RevenueActual:  decimal.NewFromInt(3_000_000),
      EarningsActual: decimal.NewFromInt(450_000),
      ConditionMet:   true,
  })
  // result.TotalIncentive = ₹75,000 (30,000 NRV + 45,000 ER)
*/
package incentive

import (
	"github.com/shopspring/decimal"

	"github.com/warp/incentive-engine/generic"
)

var two = decimal.NewFromInt(2)

// ReasonNewCustomersExceedTotal is the guard-clause rejection message.
const ReasonNewCustomersExceedTotal = "new-customer earnings cannot exceed total earnings"

// Calculator computes payouts for a fixed Plan.
type Calculator struct {
	plan Plan
}

// NewCalculator validates the plan and returns a calculator for it.
func NewCalculator(plan Plan) (*Calculator, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{plan: plan}, nil
}

var defaultCalculator = &Calculator{plan: DefaultPlan()}

// Default returns the calculator for the fixed plan.
func Default() *Calculator { return defaultCalculator }

// Calculate runs the default plan.
func Calculate(in Input) (Result, error) {
	return defaultCalculator.Calculate(in)
}

// ResolveTier resolves an achievement percentage against the fixed thresholds.
func ResolveTier(percent decimal.Decimal) generic.Tier {
	return RevenueTiers.Resolve(percent)
}

// Plan returns the plan the calculator was built with.
func (c *Calculator) Plan() Plan { return c.plan }

// Calculate computes the payout for in.
func (c *Calculator) Calculate(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	if !in.ConditionMet {
		return zeroResult(StatusConditionNotMet), nil
	}

	revenuePct, revenueTier, revenueIncentive := c.achievement(MetricNRV, in.RevenueActual)
	earningsPct, earningsTier, earningsIncentive := c.achievement(MetricER, in.EarningsActual)
	booster := c.Booster(in.EarningsActual, in.EarningsNewCustomers)

	total := revenueIncentive.Add(earningsIncentive).Add(booster)
	installment := total.Div(two)

	return Result{
		Status:             StatusCalculated,
		RevenuePercent:     revenuePct,
		EarningsPercent:    earningsPct,
		RevenueTier:        revenueTier,
		EarningsTier:       earningsTier,
		FinalTier:          generic.MinTier(revenueTier, earningsTier),
		RevenueIncentive:   revenueIncentive,
		EarningsIncentive:  earningsIncentive,
		BoosterIncentive:   booster,
		TotalIncentive:     total,
		PayoutInstallment1: installment,
		PayoutInstallment2: installment,
	}, nil
}

// achievement resolves one metric: its percentage, its own tier, and the
// fixed incentive that tier pays.
func (c *Calculator) achievement(m Metric, actual decimal.Decimal) (generic.Amount, generic.Tier, generic.Amount) {
	tiers := c.plan.TiersFor(m)
	pct := generic.PercentOf(actual, c.plan.TargetFor(m))
	tier := tiers.Resolve(pct.Value)
	return pct, tier, tiers.AmountFor(tier)
}

// Booster returns the new-customer booster for the given ER figures.
// Exactly the threshold ratio does not qualify.
func (c *Calculator) Booster(earningsActual, earningsNewCustomers decimal.Decimal) generic.Amount {
	rule := c.plan.Booster
	if !generic.RatioExceeds(earningsNewCustomers, earningsActual, rule.Threshold) {
		return generic.ZeroAmount(UnitINR)
	}
	return generic.NewAmountFromDecimal(earningsActual.Mul(rule.Rate), UnitINR)
}

// Validate applies the input guard clauses.
func Validate(in Input) error {
	if in.EarningsNewCustomers.GreaterThan(in.EarningsActual) {
		return &generic.InvalidInputError{
			Field:  "er_new_customers",
			Value:  in.EarningsNewCustomers.String(),
			Reason: ReasonNewCustomersExceedTotal,
		}
	}
	return nil
}
