package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-calculator/domain"
)

func TestSimpleInterest(t *testing.T) {
	got, err := SimpleInterest(1000, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	cases := [][3]float64{{1500.50, 4.25, 1.5}, {1000, 0, 2}, {1000, 5, 0}, {0, 5, 2}, {12345.67, 3.3, 7}}
	for _, c := range cases {
		got, err := SimpleInterest(c[0], c[1], c[2])
		require.NoError(t, err)
		assert.Equal(t, c[0]*c[1]*c[2]/100, got)
	}
}

func TestSimpleInterestNegativeInputs(t *testing.T) {
	for _, c := range [][3]float64{{-1000, 5, 2}, {1000, -5, 2}, {1000, 5, -2}} {
		_, err := SimpleInterest(c[0], c[1], c[2])
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidDomain))
		assert.Equal(t, "Values must be non-negative", err.Error())
	}
}

func TestCompoundInterest(t *testing.T) {
	got, err := CompoundInterest(1000, 5, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1000*math.Pow(1.05, 2), got, 0.005)

	got, err = CompoundInterest(1000, 6, 1, 12)
	require.NoError(t, err)
	assert.InDelta(t, 1000*math.Pow(1+0.06/12, 12), got, 0.005)

	t.Run("zero rate returns the principal", func(t *testing.T) {
		for _, freq := range []int{1, 4, 12, 365} {
			got, err := CompoundInterest(1000, 0, 3.5, freq)
			require.NoError(t, err)
			assert.Equal(t, 1000.0, got)
		}
	})
}

func TestCompoundInterestInvalidInputs(t *testing.T) {
	cases := []struct {
		p, r, t float64
		freq    int
	}{
		{-1000, 5, 2, 1},
		{1000, -5, 2, 1},
		{1000, 5, -2, 1},
		{1000, 5, 2, 0},
		{1000, 5, 2, -1},
	}
	for _, c := range cases {
		_, err := CompoundInterest(c.p, c.r, c.t, c.freq)
		assert.True(t, domain.IsKind(err, domain.KindInvalidDomain))
	}
}

func TestCompoundInterestOverflow(t *testing.T) {
	_, err := CompoundInterest(1e300, 1000, 1e6, 12)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidDomain))
}

func TestMonthlyPayment(t *testing.T) {
	got, err := MonthlyPayment(10000, 6, 5)
	require.NoError(t, err)

	r := 0.06 / 12
	n := 60.0
	want := 10000 * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)
	assert.InDelta(t, want, got, 0.005)

	t.Run("zero rate divides evenly", func(t *testing.T) {
		got, err := MonthlyPayment(12000, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 500.0, got)

		got, err = MonthlyPayment(1000, 0, 7)
		require.NoError(t, err)
		assert.Equal(t, 1000/84.0, got)
	})

	t.Run("positive rate repays more than the loan", func(t *testing.T) {
		for _, c := range []struct {
			loan, rate float64
			years      int
		}{{10000, 5.5, 3}, {250000, 0.1, 30}, {500, 19.9, 1}} {
			got, err := MonthlyPayment(c.loan, c.rate, c.years)
			require.NoError(t, err)
			assert.Greater(t, got*float64(c.years*MonthsPerYear), c.loan)
		}
	})
}

func TestMonthlyPaymentTinyRate(t *testing.T) {
	for _, rate := range []float64{1e-15, 1e-300, 5e-324} {
		got, err := MonthlyPayment(12000, rate, 1)
		require.NoError(t, err, "rate %g", rate)
		assert.InDelta(t, 1000, got, 0.01, "rate %g", rate)
	}
}

func TestMonthlyPaymentInvalidInputs(t *testing.T) {
	cases := []struct {
		loan, rate float64
		years      int
	}{{0, 6, 5}, {-1, 6, 5}, {10000, -1, 5}, {10000, 6, 0}, {10000, 6, -2}}
	for _, c := range cases {
		_, err := MonthlyPayment(c.loan, c.rate, c.years)
		require.Error(t, err)
		assert.Equal(t, "Invalid loan parameters", err.Error())
	}
}

func TestSavingsGoalTime(t *testing.T) {
	got, err := SavingsGoalTime(5000, 200, 3)
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
	// interest shortens the horizon
	assert.Less(t, got, 5000/(200*12.0))

	r := 0.03 / 12
	months := math.Log(1+5000*r/200) / math.Log(1+r)
	assert.InDelta(t, months/12, got, 0.005)

	got, err = SavingsGoalTime(2400, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = SavingsGoalTime(1000, 30, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000/(30*12.0), got)
}

func TestSavingsGoalTimeTinyRate(t *testing.T) {
	for _, rate := range []float64{1e-15, 1e-300, 5e-324} {
		got, err := SavingsGoalTime(1200, 100, rate)
		require.NoError(t, err, "rate %g", rate)
		assert.InDelta(t, 1.0, got, 0.01, "rate %g", rate)
	}
}

func TestSavingsGoalTimeInvalidInputs(t *testing.T) {
	for _, c := range [][3]float64{{0, 200, 3}, {5000, 0, 3}, {5000, 200, -1}} {
		_, err := SavingsGoalTime(c[0], c[1], c[2])
		require.Error(t, err)
		assert.Equal(t, "Invalid savings parameters", err.Error())
	}
}

func TestSavingsGoalTimeGuardsTheLogarithm(t *testing.T) {
	_, err := SavingsGoalTime(math.MaxFloat64, 1e-300, 50)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidDomain))
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 301.97, RoundCurrency(301.9749))
	assert.Equal(t, 0.13, RoundCurrency(0.125))
	assert.Equal(t, -0.13, RoundCurrency(-0.125))
	assert.True(t, math.IsInf(RoundCurrency(math.Inf(1)), 1))
}
