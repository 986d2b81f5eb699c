package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanPlanJSON(t *testing.T) {
	t.Run("success carries the outputs", func(t *testing.T) {
		p := LoanPlan{Envelope: Succeeded(), MonthlyPayment: 100, TotalPayment: 1200, TotalInterest: 0}

		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"monthly_payment":100,"total_payment":1200,"total_interest":0}`, string(b))
	})

	t.Run("failure carries only the error", func(t *testing.T) {
		p := LoanPlan{Envelope: Failed(&FinanceError{Kind: KindOutOfRange, Msg: "Loan amount must be positive"})}

		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"error":"Loan amount must be positive","error_kind":"out_of_range"}`, string(b))
	})
}

func TestPlanJSONRoundTrip(t *testing.T) {
	in := InterestPlan{Envelope: Succeeded(), Type: InterestCompound, FinalAmount: 1083.14, InterestEarned: 83.14}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out InterestPlan
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}
