/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Calculation endpoint (success, booster, S.I.H. warning, rejections)
- Plan endpoint
- Health and metrics routes
*/
package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/incentive-engine/format"
	"github.com/warp/incentive-engine/incentive"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(incentive.Default(), nil)
	return NewRouter(h, RouterOptions{
		AllowedOrigins: []string{"http://localhost:5173"},
		MetricsEnabled: true,
	})
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// =============================================================================
// CALCULATE
// =============================================================================

func TestCalculate_FullTarget(t *testing.T) {
	// GIVEN: NRV and ER exactly on target, S.I.H. met
	router := newTestRouter(t)

	// WHEN: calculating
	rec := do(t, router, http.MethodPost, "/api/incentives/calculate",
		`{"nrv_actual": 3000000, "er_actual": 450000, "er_new_customers": 0, "sih_met": true}`)

	// THEN: ₹75,000 split in two
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dto := decode[CalculationDTO](t, rec)

	assert.NotEmpty(t, dto.CalculationID)
	assert.Equal(t, "calculated", dto.Status)
	assert.Empty(t, dto.Warning)
	require.NotNil(t, dto.Result)

	res := dto.Result
	assert.Equal(t, 100.0, res.RevenuePercent)
	assert.Equal(t, 100.0, res.EarningsPercent)
	assert.Equal(t, 100, res.FinalTier)
	assert.Equal(t, 30000.0, res.RevenueIncentive)
	assert.Equal(t, 45000.0, res.EarningsIncentive)
	assert.Equal(t, 0.0, res.BoosterIncentive)
	assert.Equal(t, 75000.0, res.TotalIncentive)
	assert.Equal(t, 37500.0, res.PayoutInstallment1)
	assert.Equal(t, 37500.0, res.PayoutInstallment2)
	assert.Equal(t, "INR", res.Currency)
	assert.Equal(t, "₹75,000.00", res.Display.TotalIncentive)
	assert.True(t, res.Display.ShowResults)
}

func TestCalculate_StringNumbersAccepted(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/incentives/calculate",
		`{"nrv_actual": "1500000", "er_actual": "225000", "er_new_customers": "200000", "sih_met": true}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dto := decode[CalculationDTO](t, rec)
	require.NotNil(t, dto.Result)
	assert.Equal(t, 6750.0, dto.Result.BoosterIncentive)
	assert.Equal(t, 18750.0, dto.Result.TotalIncentive)
	assert.Equal(t, 50, dto.Result.FinalTier)
}

func TestCalculate_ConditionNotMet(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/incentives/calculate",
		`{"nrv_actual": 3000000, "er_actual": 450000, "sih_met": false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	dto := decode[CalculationDTO](t, rec)
	assert.Equal(t, "condition_not_met", dto.Status)
	assert.Equal(t, format.ConditionNotMetWarning, dto.Warning)
	assert.Nil(t, dto.Result, "no monetary figures in the warning state")
}

func TestCalculate_NewCustomersExceedTotal(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/incentives/calculate",
		`{"nrv_actual": 3000000, "er_actual": 450000, "er_new_customers": 500000, "sih_met": true}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "invalid_input", resp.Code)
	assert.Equal(t, format.NewCustomersError, resp.Error)

	details, ok := resp.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "er_new_customers", details["field"])
}

func TestCalculate_NonNumericRejected(t *testing.T) {
	router := newTestRouter(t)

	bodies := []string{
		`{"nrv_actual": "three million", "er_actual": 450000, "sih_met": true}`,
		`{"nrv_actual": 3000000, "er_actual": [1], "sih_met": true}`,
		`{"nrv_actual": 3000000, "bogus": 1}`,
		`not json`,
	}

	for _, body := range bodies {
		rec := do(t, router, http.MethodPost, "/api/incentives/calculate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		resp := decode[ErrorResponse](t, rec)
		assert.Equal(t, "invalid_input", resp.Code, body)
	}
}

func TestCalculate_OutOfRangeRejected(t *testing.T) {
	router := newTestRouter(t)

	for _, raw := range []string{"1e400", "1e10000000", "1e-10000000"} {
		body := `{"nrv_actual": "` + raw + `", "er_actual": 1, "er_new_customers": 0, "sih_met": true}`
		rec := do(t, router, http.MethodPost, "/api/incentives/calculate", body)

		require.Equal(t, http.StatusBadRequest, rec.Code, raw)
		resp := decode[ErrorResponse](t, rec)
		assert.Equal(t, "invalid_input", resp.Code)
		details, ok := resp.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "nrv_actual", details["field"])
		assert.Equal(t, "out of range", details["reason"])
	}
}

func TestCalculate_LargestAcceptedAmount(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/incentives/calculate",
		`{"nrv_actual": "999999999999999999", "er_actual": 1, "er_new_customers": 0, "sih_met": true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	dto := decode[CalculationDTO](t, rec)
	require.NotNil(t, dto.Result)
	assert.Equal(t, 150, dto.Result.RevenueTier)
	assert.Equal(t, 45000.0, dto.Result.RevenueIncentive)
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"nrv_percent": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "Response encoding failed", resp.Error)
}

// =============================================================================
// PLAN, HEALTH, METRICS
// =============================================================================

func TestGetPlan(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/incentives/plan", "")
	require.Equal(t, http.StatusOK, rec.Code)

	plan := decode[PlanDTO](t, rec)
	assert.Equal(t, "INR", plan.Currency)
	assert.Equal(t, 3000000.0, plan.RevenueTarget)
	assert.Equal(t, 450000.0, plan.EarningsTarget)
	assert.Equal(t, 0.6, plan.Booster.Threshold)
	assert.Equal(t, 0.03, plan.Booster.Rate)

	require.Len(t, plan.Tiers, 6)
	assert.Equal(t, TierDTO{Tier: 50, RevenueIncentive: 7500, EarningsIncentive: 4500}, plan.Tiers[0])
	assert.Equal(t, TierDTO{Tier: 150, RevenueIncentive: 45000, EarningsIncentive: 81000}, plan.Tiers[5])
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetrics_CountsOutcomes(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/api/incentives/calculate", `{"er_actual": 1, "er_new_customers": 2, "sih_met": true}`)
	do(t, router, http.MethodPost, "/api/incentives/calculate", `{"sih_met": false}`)

	rec := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `incentive_calculations_total{outcome="invalid_input"}`)
	assert.Contains(t, rec.Body.String(), `incentive_calculations_total{outcome="condition_not_met"}`)
}

func TestMetrics_Disabled(t *testing.T) {
	router := NewRouter(NewHandler(incentive.Default(), nil), RouterOptions{})
	rec := do(t, router, http.MethodGet, "/metrics", "")
	assert.NotEqual(t, http.StatusOK, rec.Code)
}
