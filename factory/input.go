/*
Package factory converts raw caller input into incentive.Input.

PURPOSE:
  Form fields, CLI flags and JSON bodies arrive as text. The factory parses
  them strictly: a value that is not a number is rejected with an
  InvalidInputError naming the field, instead of silently becoming zero.

ACCEPTED NUMBER FORMS:
  "3000000", "30,00,000", "3,000,000", "₹ 4,50,000.50", "-1200", "1e6"
  Blank (whitespace only) -> 0, the same as an empty form field.

REJECTED:
  "abc", "12abc", "NaN", "Inf", "1.2.3"
  Out of range: more than 18 integer digits or 10 decimal places
  ("1e400", "1e-10000000").

JSON SCHEMA:
  {
    "nrv_actual": 3000000,
    "er_actual": "450000",
    "er_new_customers": 0,
    "sih_met": true
  }
  Numbers may be JSON numbers or numeric strings.

USAGE:
  f := factory.NewInputFactory()

  in, err := f.Parse(factory.FormInput{
      RevenueActual:  "30,00,000",
      EarningsActual: "4,50,000",
      ConditionMet:   true,
  })

  in, err = f.ParseJSON(`{"nrv_actual": 3000000, "er_actual": 450000, "sih_met": true}`)

SEE ALSO:
  - incentive/types.go: Input
  - generic/errors.go: InvalidInputError
*/
package factory

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/incentive-engine/generic"
	"github.com/warp/incentive-engine/incentive"
)

// Field names used in errors and JSON.
const (
	FieldRevenueActual        = "nrv_actual"
	FieldEarningsActual       = "er_actual"
	FieldEarningsNewCustomers = "er_new_customers"
	FieldConditionMet         = "sih_met"
)

// =============================================================================
// INPUT SHAPES
// =============================================================================

// FormInput is the raw text of the calculator form.
type FormInput struct {
	RevenueActual        string
	EarningsActual       string
	EarningsNewCustomers string
	ConditionMet         bool
}

// InputJSON is the JSON representation of a calculation request.
type InputJSON struct {
	RevenueActual        json.Number `json:"nrv_actual"`
	EarningsActual       json.Number `json:"er_actual"`
	EarningsNewCustomers json.Number `json:"er_new_customers"`
	ConditionMet         bool        `json:"sih_met"`
}

// Form converts the JSON body into form text.
func (j InputJSON) Form() FormInput {
	return FormInput{
		RevenueActual:        j.RevenueActual.String(),
		EarningsActual:       j.EarningsActual.String(),
		EarningsNewCustomers: j.EarningsNewCustomers.String(),
		ConditionMet:         j.ConditionMet,
	}
}

// =============================================================================
// FACTORY
// =============================================================================

// InputFactory builds calculation inputs.
type InputFactory struct{}

// NewInputFactory creates a new input factory.
func NewInputFactory() *InputFactory {
	return &InputFactory{}
}

// Parse converts form text into an incentive.Input.
func (f *InputFactory) Parse(form FormInput) (incentive.Input, error) {
	nrv, err := ParseAmount(FieldRevenueActual, form.RevenueActual)
	if err != nil {
		return incentive.Input{}, err
	}
	er, err := ParseAmount(FieldEarningsActual, form.EarningsActual)
	if err != nil {
		return incentive.Input{}, err
	}
	erNew, err := ParseAmount(FieldEarningsNewCustomers, form.EarningsNewCustomers)
	if err != nil {
		return incentive.Input{}, err
	}

	return incentive.Input{
		RevenueActual:        nrv,
		EarningsActual:       er,
		EarningsNewCustomers: erNew,
		ConditionMet:         form.ConditionMet,
	}, nil
}

// ParseJSON converts a JSON body into an incentive.Input.
func (f *InputFactory) ParseJSON(data string) (incentive.Input, error) {
	var body InputJSON
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return incentive.Input{}, &generic.InvalidInputError{
			Field:  "body",
			Reason: err.Error(),
		}
	}
	return f.Parse(body.Form())
}

// =============================================================================
// FIELD PARSERS
// =============================================================================

// Magnitude limits for a single amount. Exponents are otherwise only bounded
// by int32, and arithmetic cost grows with them.
const (
	maxIntegerDigits  = 18
	maxFractionDigits = 10
)

// ParseAmount parses a single monetary field.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &generic.InvalidInputError{
			Field:  field,
			Value:  raw,
			Reason: "not a number",
		}
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if d.Exponent() < -maxFractionDigits || d.NumDigits()+int(d.Exponent()) > maxIntegerDigits {
		return decimal.Zero, &generic.InvalidInputError{
			Field:  field,
			Value:  raw,
			Reason: "out of range",
		}
	}
	return d, nil
}

// ParseCondition parses a yes/no flag such as the S.I.H. condition.
func ParseCondition(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off", "":
		return false, nil
	}
	return false, &generic.InvalidInputError{
		Field:  FieldConditionMet,
		Value:  raw,
		Reason: "expected true/false, yes/no, 1/0 or on/off",
	}
}
