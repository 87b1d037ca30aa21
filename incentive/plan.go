/*
plan.go - The fixed incentive plan

PURPOSE:
  Holds the targets, tier tables and booster rule the calculator uses.
  These are compile-time constants; nothing at runtime changes them.

TARGETS:
  NRV: ₹30,00,000
  ER:  ₹4,50,000

TIER TABLES (achievement % -> fixed incentive):
  tier   NRV       ER
  50     7,500     4,500
  75     16,875    16,875
  100    30,000    45,000
  110    33,000    59,400
  120    36,000    64,800
  150    45,000    81,000

NEW CUSTOMER BOOSTER:
  When ER from new customers is strictly above 60% of ER actual,
  pay 3% of ER actual on top.

SEE ALSO:
  - calculator.go: Uses DefaultPlan
  - generic/tier.go: TierTable
*/
package incentive

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/incentive-engine/generic"
)

// =============================================================================
// PLAN CONSTANTS
// =============================================================================

var (
	RevenueTarget  = decimal.NewFromInt(3_000_000)
	EarningsTarget = decimal.NewFromInt(450_000)

	BoosterThreshold = decimal.RequireFromString("0.60")
	BoosterRate      = decimal.RequireFromString("0.03")
)

// AchievementTiers is the threshold sequence shared by both tables.
var AchievementTiers = []generic.Tier{50, 75, 100, 110, 120, 150}

func inr(n int64) generic.Amount { return generic.NewAmountFromInt(n, UnitINR) }

// RevenueTiers pays the NRV incentive.
var RevenueTiers = generic.MustTierTable(UnitINR,
	generic.TierEntry{Tier: 50, Amount: inr(7500)},
	generic.TierEntry{Tier: 75, Amount: inr(16875)},
	generic.TierEntry{Tier: 100, Amount: inr(30000)},
	generic.TierEntry{Tier: 110, Amount: inr(33000)},
	generic.TierEntry{Tier: 120, Amount: inr(36000)},
	generic.TierEntry{Tier: 150, Amount: inr(45000)},
)

// EarningsTiers pays the ER incentive.
var EarningsTiers = generic.MustTierTable(UnitINR,
	generic.TierEntry{Tier: 50, Amount: inr(4500)},
	generic.TierEntry{Tier: 75, Amount: inr(16875)},
	generic.TierEntry{Tier: 100, Amount: inr(45000)},
	generic.TierEntry{Tier: 110, Amount: inr(59400)},
	generic.TierEntry{Tier: 120, Amount: inr(64800)},
	generic.TierEntry{Tier: 150, Amount: inr(81000)},
)

// =============================================================================
// PLAN
// =============================================================================

// Targets are the denominators for achievement percentages.
type Targets struct {
	Revenue  decimal.Decimal
	Earnings decimal.Decimal
}

// BoosterRule pays Rate * ER actual when new-customer ER / ER actual > Threshold.
type BoosterRule struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// Plan bundles everything a Calculator needs.
type Plan struct {
	Targets       Targets
	RevenueTiers  generic.TierTable
	EarningsTiers generic.TierTable
	Booster       BoosterRule
}

// DefaultPlan returns the fixed plan.
func DefaultPlan() Plan {
	return Plan{
		Targets:       Targets{Revenue: RevenueTarget, Earnings: EarningsTarget},
		RevenueTiers:  RevenueTiers,
		EarningsTiers: EarningsTiers,
		Booster:       BoosterRule{Threshold: BoosterThreshold, Rate: BoosterRate},
	}
}

// Validate checks the plan is internally consistent.
func (p Plan) Validate() error {
	if !p.Targets.Revenue.IsPositive() || !p.Targets.Earnings.IsPositive() {
		return fmt.Errorf("%w: targets must be positive", generic.ErrInvalidPlan)
	}
	if p.RevenueTiers.Len() == 0 || p.EarningsTiers.Len() == 0 {
		return fmt.Errorf("%w: tier tables must not be empty", generic.ErrInvalidPlan)
	}
	if !p.RevenueTiers.SameThresholds(p.EarningsTiers) {
		return fmt.Errorf("%w: NRV and ER tables use different thresholds", generic.ErrInvalidPlan)
	}
	if p.Booster.Threshold.IsNegative() || p.Booster.Rate.IsNegative() {
		return fmt.Errorf("%w: booster threshold and rate must not be negative", generic.ErrInvalidPlan)
	}
	return nil
}

// TiersFor returns the tier table for a metric.
func (p Plan) TiersFor(m Metric) generic.TierTable {
	if m == MetricER {
		return p.EarningsTiers
	}
	return p.RevenueTiers
}

// TargetFor returns the target for a metric.
func (p Plan) TargetFor(m Metric) decimal.Decimal {
	if m == MetricER {
		return p.Targets.Earnings
	}
	return p.Targets.Revenue
}
