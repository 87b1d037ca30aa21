package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/warp/incentive-engine/incentive"
)

// Calculation outcomes used as the "outcome" label.
const (
	OutcomeCalculated      = string(incentive.StatusCalculated)
	OutcomeConditionNotMet = string(incentive.StatusConditionNotMet)
	OutcomeInvalidInput    = "invalid_input"
)

// CalculationsTotal counts calculations by outcome.
var CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "incentive",
	Name:      "calculations_total",
	Help:      "Total incentive calculations by outcome.",
}, []string{"outcome"})

// TotalPayout records the total incentive of successful calculations.
var TotalPayout = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "incentive",
	Name:      "total_payout_inr",
	Help:      "Total incentive per calculated payout, in INR.",
	Buckets:   []float64{0, 10_000, 25_000, 50_000, 75_000, 100_000, 150_000, 200_000},
})

func observeCalculation(res incentive.Result, err error) {
	switch {
	case err != nil:
		CalculationsTotal.WithLabelValues(OutcomeInvalidInput).Inc()
	case res.Calculated():
		CalculationsTotal.WithLabelValues(OutcomeCalculated).Inc()
		TotalPayout.Observe(res.TotalIncentive.Float64())
	default:
		CalculationsTotal.WithLabelValues(OutcomeConditionNotMet).Inc()
	}
}
