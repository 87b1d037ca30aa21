/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model (decimal Amounts, Tiers) from the external API
  contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Calculation:
    CalculateRequest, CalculationDTO, ResultDTO

  Plan:
    PlanDTO, TierDTO, BoosterDTO

  Scenarios:
    ScenarioDTO

VALIDATION:
  Validation is done by factory.InputFactory and incentive.Validate, not in
  DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/input.go: InputJSON type
  - format/display.go: Display strings embedded in ResultDTO
*/
package api

import (
	"github.com/warp/incentive-engine/factory"
	"github.com/warp/incentive-engine/format"
	"github.com/warp/incentive-engine/incentive"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculateRequest is the request to calculate an incentive.
type CalculateRequest = factory.InputJSON

// CalculationDTO is the response to a calculation.
// Result is nil when the S.I.H. condition is not met.
type CalculationDTO struct {
	CalculationID string     `json:"calculation_id"`
	Status        string     `json:"status"`
	Warning       string     `json:"warning,omitempty"`
	Result        *ResultDTO `json:"result,omitempty"`
}

// ResultDTO carries every payout figure, numeric and rendered.
type ResultDTO struct {
	RevenuePercent     float64        `json:"nrv_percent"`
	EarningsPercent    float64        `json:"er_percent"`
	RevenueTier        int            `json:"nrv_tier"`
	EarningsTier       int            `json:"er_tier"`
	FinalTier          int            `json:"final_tier"`
	RevenueIncentive   float64        `json:"nrv_incentive"`
	EarningsIncentive  float64        `json:"er_incentive"`
	BoosterIncentive   float64        `json:"booster_incentive"`
	TotalIncentive     float64        `json:"total_incentive"`
	PayoutInstallment1 float64        `json:"payout_installment_1"`
	PayoutInstallment2 float64        `json:"payout_installment_2"`
	Currency           string         `json:"currency"`
	Display            format.Display `json:"display"`
}

// PlanDTO describes the fixed incentive plan.
type PlanDTO struct {
	Currency       string     `json:"currency"`
	RevenueTarget  float64    `json:"nrv_target"`
	EarningsTarget float64    `json:"er_target"`
	Tiers          []TierDTO  `json:"tiers"`
	Booster        BoosterDTO `json:"booster"`
}

// TierDTO is one row of the tier tables.
type TierDTO struct {
	Tier              int     `json:"tier"`
	RevenueIncentive  float64 `json:"nrv_incentive"`
	EarningsIncentive float64 `json:"er_incentive"`
}

// BoosterDTO describes the new-customer booster.
type BoosterDTO struct {
	Threshold float64 `json:"threshold"`
	Rate      float64 `json:"rate"`
}

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Input       CalculateRequest `json:"input"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toCalculationDTO(id string, res incentive.Result) CalculationDTO {
	dto := CalculationDTO{
		CalculationID: id,
		Status:        string(res.Status),
	}
	if !res.Calculated() {
		dto.Warning = format.ConditionNotMetWarning
		return dto
	}

	dto.Result = &ResultDTO{
		RevenuePercent:     res.RevenuePercent.Float64(),
		EarningsPercent:    res.EarningsPercent.Float64(),
		RevenueTier:        int(res.RevenueTier),
		EarningsTier:       int(res.EarningsTier),
		FinalTier:          int(res.FinalTier),
		RevenueIncentive:   res.RevenueIncentive.Float64(),
		EarningsIncentive:  res.EarningsIncentive.Float64(),
		BoosterIncentive:   res.BoosterIncentive.Float64(),
		TotalIncentive:     res.TotalIncentive.Float64(),
		PayoutInstallment1: res.PayoutInstallment1.Float64(),
		PayoutInstallment2: res.PayoutInstallment2.Float64(),
		Currency:           string(incentive.UnitINR),
		Display:            format.Render(res),
	}
	return dto
}

func toPlanDTO(plan incentive.Plan) PlanDTO {
	revenueTarget, _ := plan.Targets.Revenue.Float64()
	earningsTarget, _ := plan.Targets.Earnings.Float64()
	threshold, _ := plan.Booster.Threshold.Float64()
	rate, _ := plan.Booster.Rate.Float64()

	tiers := make([]TierDTO, 0, plan.RevenueTiers.Len())
	for _, tier := range plan.RevenueTiers.Thresholds() {
		tiers = append(tiers, TierDTO{
			Tier:              int(tier),
			RevenueIncentive:  plan.RevenueTiers.AmountFor(tier).Float64(),
			EarningsIncentive: plan.EarningsTiers.AmountFor(tier).Float64(),
		})
	}

	return PlanDTO{
		Currency:       string(incentive.UnitINR),
		RevenueTarget:  revenueTarget,
		EarningsTarget: earningsTarget,
		Tiers:          tiers,
		Booster:        BoosterDTO{Threshold: threshold, Rate: rate},
	}
}
