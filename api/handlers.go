/*
handlers.go - HTTP API handlers for the incentive engine

PURPOSE:
  Exposes the incentive calculator via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Incentives:
    POST   /api/incentives/calculate   Calculate a payout
    GET    /api/incentives/plan        Targets, tier tables, booster rule

  Scenarios:
    GET    /api/scenarios              List demo scenarios
    POST   /api/scenarios/{id}/run     Run a demo scenario

  Health:
    GET    /api/health                 Liveness

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Calculator: The fixed-plan incentive calculator
  - Inputs: Strict parsing of request bodies
  - Logger: Structured logger

REQUEST FLOW:
  1. Parse HTTP request (factory.InputFactory)
  2. Validate and calculate (incentive.Calculator)
  3. Serialize response (numeric + rendered figures)
  4. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Unparseable body, non-numeric or out-of-range field,
         new-customer ER above ER actual
  - 404: Unknown scenario
  - 500: Internal errors

  S.I.H. not met is NOT an error: 200 with status "condition_not_met".

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenarios
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/warp/incentive-engine/factory"
	"github.com/warp/incentive-engine/format"
	"github.com/warp/incentive-engine/generic"
	"github.com/warp/incentive-engine/incentive"
)

const maxBodyBytes = 1 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calculator *incentive.Calculator
	Inputs     *factory.InputFactory
	Logger     *slog.Logger
}

// NewHandler creates a new handler for the given calculator.
// A nil logger discards log output.
func NewHandler(calc *incentive.Calculator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		Calculator: calc,
		Inputs:     factory.NewInputFactory(),
		Logger:     logger,
	}
}

// =============================================================================
// INCENTIVE HANDLERS
// =============================================================================

// Calculate computes a payout from the request body.
// POST /api/incentives/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := h.Inputs.ParseJSON(string(body))
	if err != nil {
		observeCalculation(incentive.Result{}, err)
		writeCalculationError(w, err)
		return
	}

	h.respondWithCalculation(w, in)
}

// GetPlan returns the fixed incentive plan.
// GET /api/incentives/plan
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPlanDTO(h.Calculator.Plan()))
}

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) respondWithCalculation(w http.ResponseWriter, in incentive.Input) {
	res, err := h.Calculator.Calculate(in)
	observeCalculation(res, err)
	if err != nil {
		h.Logger.Debug("calculation rejected", "error", err)
		writeCalculationError(w, err)
		return
	}

	id := uuid.NewString()
	h.Logger.Debug("calculation complete",
		"calculation_id", id,
		"status", res.Status,
		"final_tier", int(res.FinalTier),
		"total", res.TotalIncentive.Value.String(),
	)

	writeJSON(w, http.StatusOK, toCalculationDTO(id, res))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

// writeJSON encodes before writing the header so an unencodable value
// becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		json.NewEncoder(&buf).Encode(ErrorResponse{
			Error:   "Response encoding failed",
			Details: err.Error(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeCalculationError maps domain errors onto HTTP responses.
func writeCalculationError(w http.ResponseWriter, err error) {
	switch {
	case generic.IsClientError(err):
		resp := ErrorResponse{
			Error:   format.ErrorMessage(err),
			Code:    "invalid_input",
			Details: err.Error(),
		}
		var inputErr *generic.InvalidInputError
		if errors.As(err, &inputErr) {
			resp.Details = map[string]string{
				"field":  inputErr.Field,
				"reason": inputErr.Reason,
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not found", err)
	default:
		writeError(w, http.StatusInternalServerError, "Calculation failed", err)
	}
}
