package format

import (
	"errors"

	"github.com/warp/incentive-engine/generic"
	"github.com/warp/incentive-engine/incentive"
)

// Messages shown in place of a result table.
const (
	ConditionNotMetWarning = "S.I.H. condition not met. No incentive is payable for this period."
	NewCustomersError      = "Error: ER from New Customers cannot exceed ER Actual."
)

// Display holds every result field as rendered text.
type Display struct {
	ShowResults bool   `json:"show_results"`
	Warning     string `json:"warning,omitempty"`

	RevenuePercent  string `json:"nrv_percent"`
	EarningsPercent string `json:"er_percent"`
	FinalTier       string `json:"final_tier"`

	RevenueIncentive  string `json:"nrv_incentive"`
	EarningsIncentive string `json:"er_incentive"`
	BoosterIncentive  string `json:"booster_incentive"`
	TotalIncentive    string `json:"total_incentive"`

	Payout1 string `json:"payout_1"`
	Payout2 string `json:"payout_2"`
}

// Render converts a result into display strings. A condition-not-met result
// renders zeros with the warning and the result table hidden.
func Render(r incentive.Result) Display {
	d := Display{
		ShowResults:       r.Calculated(),
		RevenuePercent:    Percent(r.RevenuePercent),
		EarningsPercent:   Percent(r.EarningsPercent),
		FinalTier:         Tier(r.FinalTier),
		RevenueIncentive:  Amount(r.RevenueIncentive),
		EarningsIncentive: Amount(r.EarningsIncentive),
		BoosterIncentive:  Amount(r.BoosterIncentive),
		TotalIncentive:    Amount(r.TotalIncentive),
		Payout1:           Amount(r.PayoutInstallment1),
		Payout2:           Amount(r.PayoutInstallment2),
	}
	if r.Status == incentive.StatusConditionNotMet {
		d.Warning = ConditionNotMetWarning
	}
	return d
}

// ErrorMessage returns the user-facing text for a calculation error.
func ErrorMessage(err error) string {
	var inputErr *generic.InvalidInputError
	if errors.As(err, &inputErr) && inputErr.Reason == incentive.ReasonNewCustomersExceedTotal {
		return NewCustomersError
	}
	return "Error: " + err.Error()
}
