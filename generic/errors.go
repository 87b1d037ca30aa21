/*
errors.go - Centralized error types for the incentive engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages wrap these errors with additional context.

ERROR CATEGORIES:
  1. Validation errors - Input that cannot be calculated on
  2. Configuration errors - Malformed tier tables or plans
  3. Lookup errors - Unknown scenarios

USAGE:
    if errors.Is(err, generic.ErrInvalidInput) {
        // reject, do not retry
    }

    var inputErr *generic.InvalidInputError
    if errors.As(err, &inputErr) {
        log.Printf("bad field %s", inputErr.Field)
    }

SEE ALSO:
  - tier.go: Uses ErrInvalidTierTable
  - incentive/calculator.go: Returns InvalidInputError
  - factory/input.go: Returns InvalidInputError for unparseable values
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when calculation input is rejected.
	// The caller must suppress any result display.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTierTable is returned when tier thresholds are not strictly
	// ascending or amounts are in the wrong unit.
	ErrInvalidTierTable = errors.New("invalid tier table")

	// ErrInvalidPlan is returned when a plan's parts are inconsistent.
	ErrInvalidPlan = errors.New("invalid incentive plan")

	// ErrScenarioNotFound is returned when a referenced demo scenario doesn't exist.
	ErrScenarioNotFound = errors.New("scenario not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidInputError provides details about a rejected input field.
type InvalidInputError struct {
	Field  string // e.g. "er_new_customers"
	Value  string // raw value, empty when the rule spans fields
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrScenarioNotFound)
}
