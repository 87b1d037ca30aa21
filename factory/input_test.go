package factory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/incentive-engine/generic"
)

func TestParseAmount_Accepted(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"3000000", "3000000"},
		{"30,00,000", "3000000"},
		{"3,000,000", "3000000"},
		{"₹ 4,50,000.50", "450000.5"},
		{"₹4,50,000", "450000"},
		{"  1200  ", "1200"},
		{"-1200", "-1200"},
		{"1e6", "1000000"},
		{"999999999999999999", "999999999999999999"},
		{"0.0000000001", "0.0000000001"},
		{"0e-10000000", "0"},
		{"", "0"},
		{"   ", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAmount(FieldRevenueActual, tt.raw)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseAmount_Rejected(t *testing.T) {
	for _, raw := range []string{"abc", "12abc", "NaN", "Inf", "1.2.3", "₹", "1e400", "1e10000000", "1e-10000000", "1000000000000000000", "0.00000000001"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseAmount(FieldEarningsActual, raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, generic.ErrInvalidInput)

			var inputErr *generic.InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, FieldEarningsActual, inputErr.Field)
			assert.Equal(t, raw, inputErr.Value)
		})
	}
}

func TestParseAmount_OutOfRangeReason(t *testing.T) {
	_, err := ParseAmount(FieldRevenueActual, "1e10000000")

	var inputErr *generic.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "out of range", inputErr.Reason)
}

func TestParse_Form(t *testing.T) {
	f := NewInputFactory()

	in, err := f.Parse(FormInput{
		RevenueActual:        "30,00,000",
		EarningsActual:       "4,50,000",
		EarningsNewCustomers: "",
		ConditionMet:         true,
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(3_000_000).Equal(in.RevenueActual))
	assert.True(t, decimal.NewFromInt(450_000).Equal(in.EarningsActual))
	assert.True(t, in.EarningsNewCustomers.IsZero())
	assert.True(t, in.ConditionMet)
}

func TestParse_FormNamesBadField(t *testing.T) {
	f := NewInputFactory()

	_, err := f.Parse(FormInput{
		RevenueActual:        "100",
		EarningsActual:       "100",
		EarningsNewCustomers: "lots",
	})

	var inputErr *generic.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, FieldEarningsNewCustomers, inputErr.Field)
}

func TestParseJSON(t *testing.T) {
	f := NewInputFactory()

	in, err := f.ParseJSON(`{"nrv_actual": 1500000, "er_actual": "225000", "er_new_customers": 200000, "sih_met": true}`)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1_500_000).Equal(in.RevenueActual))
	assert.True(t, decimal.NewFromInt(225_000).Equal(in.EarningsActual))
	assert.True(t, decimal.NewFromInt(200_000).Equal(in.EarningsNewCustomers))
	assert.True(t, in.ConditionMet)
}

func TestParseJSON_OmittedFieldsAreZero(t *testing.T) {
	in, err := NewInputFactory().ParseJSON(`{"sih_met": false}`)
	require.NoError(t, err)
	assert.True(t, in.RevenueActual.IsZero())
	assert.False(t, in.ConditionMet)
}

func TestParseJSON_Rejected(t *testing.T) {
	bodies := []string{
		`{"nrv_actual": "lots"}`,
		`{"nrv_actual": true}`,
		`{"unknown": 1}`,
		`not json`,
	}

	for _, body := range bodies {
		_, err := NewInputFactory().ParseJSON(body)
		assert.ErrorIs(t, err, generic.ErrInvalidInput, body)
	}
}

func TestParseCondition(t *testing.T) {
	for _, raw := range []string{"true", "YES", "y", "1", "on"} {
		got, err := ParseCondition(raw)
		require.NoError(t, err)
		assert.True(t, got, raw)
	}
	for _, raw := range []string{"false", "No", "0", "off", ""} {
		got, err := ParseCondition(raw)
		require.NoError(t, err)
		assert.False(t, got, raw)
	}

	_, err := ParseCondition("maybe")
	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}
