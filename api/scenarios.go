/*
scenarios.go - Demo scenarios for testing and demonstrations

PURPOSE:

	Provides pre-built calculator inputs that show each outcome of the
	calculation: a full payout, a booster, a rejected input, and the S.I.H.
	warning. Running a scenario goes through exactly the same path as
	POST /api/incentives/calculate.

AVAILABLE SCENARIOS:

	full-target:           NRV and ER at 100%, no booster (₹75,000)
	half-target-booster:   Both at 50%, 88.9% new-customer ER (₹18,750)
	invalid-new-customers: New-customer ER above ER actual (400)
	sih-not-met:           Targets hit but S.I.H. not met (warning)
	overachiever:          NRV 150%, ER 120%, booster (₹1,26,000)

USAGE VIA API:

	GET  /api/scenarios
	POST /api/scenarios/full-target/run

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description and input
 2. Nothing else; RunScenario looks it up by ID

SEE ALSO:
  - handlers.go: Calculation path shared with RunScenario
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/incentive-engine/generic"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "full-target",
		Name:        "Full Target",
		Description: "NRV ₹30,00,000 and ER ₹4,50,000: both metrics at 100%, no new customers",
		Input: CalculateRequest{
			RevenueActual:        json.Number("3000000"),
			EarningsActual:       json.Number("450000"),
			EarningsNewCustomers: json.Number("0"),
			ConditionMet:         true,
		},
	},
	{
		ID:          "half-target-booster",
		Name:        "Half Target With Booster",
		Description: "Both metrics at 50%; 88.9% of ER from new customers unlocks the 3% booster",
		Input: CalculateRequest{
			RevenueActual:        json.Number("1500000"),
			EarningsActual:       json.Number("225000"),
			EarningsNewCustomers: json.Number("200000"),
			ConditionMet:         true,
		},
	},
	{
		ID:          "invalid-new-customers",
		Name:        "Invalid New-Customer ER",
		Description: "New-customer ER of ₹5,00,000 exceeds ER actual of ₹4,50,000 and is rejected",
		Input: CalculateRequest{
			RevenueActual:        json.Number("3000000"),
			EarningsActual:       json.Number("450000"),
			EarningsNewCustomers: json.Number("500000"),
			ConditionMet:         true,
		},
	},
	{
		ID:          "sih-not-met",
		Name:        "S.I.H. Not Met",
		Description: "Both targets achieved but the S.I.H. condition is not met, so nothing is payable",
		Input: CalculateRequest{
			RevenueActual:        json.Number("3000000"),
			EarningsActual:       json.Number("450000"),
			EarningsNewCustomers: json.Number("0"),
			ConditionMet:         false,
		},
	},
	{
		ID:          "overachiever",
		Name:        "Overachiever",
		Description: "NRV at 150% and ER at 120% with 75% of ER from new customers",
		Input: CalculateRequest{
			RevenueActual:        json.Number("4500000"),
			EarningsActual:       json.Number("540000"),
			EarningsNewCustomers: json.Number("405000"),
			ConditionMet:         true,
		},
	},
}

// findScenario looks up a scenario by ID.
func findScenario(id string) (ScenarioDTO, error) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return ScenarioDTO{}, fmt.Errorf("%w: %s", generic.ErrScenarioNotFound, id)
}

// ListScenarios returns available scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// RunScenario calculates the payout for a predefined scenario.
// POST /api/scenarios/{id}/run
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	scenario, err := findScenario(chi.URLParam(r, "id"))
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	in, err := h.Inputs.Parse(scenario.Input.Form())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Scenario input is malformed", err)
		return
	}

	h.respondWithCalculation(w, in)
}
