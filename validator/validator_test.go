package validator

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-calculator/domain"
)

func TestValidatePositiveNumber(t *testing.T) {
	valid := []struct {
		in   domain.Raw
		want float64
	}{
		{domain.Str("100"), 100},
		{domain.Num(50.5), 50.5},
		{domain.Str("0.1"), 0.1},
		{domain.Str("15000.50"), 15000.5},
		{domain.Str(" 42 "), 42},
		{domain.Str("1e3"), 1000},
	}
	for _, c := range valid {
		got, err := ValidatePositiveNumber(c.in, "Value")
		require.NoError(t, err, "input %v", c.in)
		assert.Equal(t, c.want, got)
	}

	invalid := []struct {
		in   domain.Raw
		kind domain.ErrorKind
		msg  string
	}{
		{domain.Str("0"), domain.KindOutOfRange, "Value must be positive"},
		{domain.Str("-10"), domain.KindOutOfRange, "Value must be positive"},
		{domain.Num(0), domain.KindOutOfRange, "Value must be positive"},
		{domain.Str("abc"), domain.KindInvalidFormat, "Value must be a valid number"},
		{domain.Str(""), domain.KindInvalidFormat, "Value must be a valid number"},
		{domain.Raw{}, domain.KindInvalidFormat, "Value must be a valid number"},
		{domain.Num(math.Inf(1)), domain.KindInvalidFormat, "Value must be a valid number"},
		{domain.Num(math.NaN()), domain.KindInvalidFormat, "Value must be a valid number"},
	}
	for _, c := range invalid {
		_, err := ValidatePositiveNumber(c.in, "Value")
		require.Error(t, err, "input %v", c.in)
		assert.Equal(t, c.kind, domain.KindOf(err))
		assert.Equal(t, c.msg, err.Error())
	}
}

func TestValidatePositiveNumber_ExtremeExponents(t *testing.T) {
	start := time.Now()

	for _, in := range []string{"1e2000000000", "1e20000000", "-1e400", "1e309"} {
		_, err := ValidatePositiveNumber(domain.Str(in), "Loan amount")
		require.Error(t, err, in)
		assert.Equal(t, domain.KindInvalidFormat, domain.KindOf(err), in)
		assert.Equal(t, "Loan amount must be a valid number", err.Error())
	}

	// underflows to zero, like any float parser
	for _, in := range []string{"1e-2000000000", "1e-20000000", "0e2000000000"} {
		_, err := ValidatePositiveNumber(domain.Str(in), "Loan amount")
		require.Error(t, err, in)
		assert.Equal(t, domain.KindOutOfRange, domain.KindOf(err), in)
	}
	got, err := ValidateNonNegativeNumber(domain.Str("1e-20000000"), "Interest rate")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = ValidatePositiveNumber(domain.Str("1.5e300"), "Loan amount")
	require.NoError(t, err)
	assert.Equal(t, 1.5e300, got)

	assert.Less(t, time.Since(start), time.Second)
}

func TestValidatePositiveNumber_RejectsOverlongText(t *testing.T) {
	_, err := ValidatePositiveNumber(domain.Str("1"+strings.Repeat("0", maxNumberLength)), "Loan amount")
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidFormat, domain.KindOf(err))
}

func TestValidateNonNegativeNumber(t *testing.T) {
	got, err := ValidateNonNegativeNumber(domain.Str("0"), "Interest rate")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = ValidateNonNegativeNumber(domain.Num(5.5), "Interest rate")
	require.NoError(t, err)
	assert.Equal(t, 5.5, got)

	_, err = ValidateNonNegativeNumber(domain.Str("-0.01"), "Interest rate")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutOfRange))
	assert.Equal(t, "Interest rate cannot be negative", err.Error())

	_, err = ValidateNonNegativeNumber(domain.Str("five"), "Interest rate")
	assert.True(t, errors.Is(err, domain.ErrInvalidFormat))
}

func TestValidateInteger(t *testing.T) {
	got, err := ValidateInteger(domain.Str("5"), "X")
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = ValidateInteger(domain.Int(30), "X")
	require.NoError(t, err)
	assert.Equal(t, 30, got)

	got, err = ValidateInteger(domain.Num(3.9), "X")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	t.Run("non-integral string is a format error", func(t *testing.T) {
		_, err := ValidateInteger(domain.Str("5.5"), "X")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidFormat))
		assert.Equal(t, "X must be a valid integer", err.Error())
	})

	for _, in := range []domain.Raw{domain.Str("5.0"), domain.Str("abc"), domain.Num(math.NaN()), domain.Num(1e20), domain.Raw{}} {
		_, err := ValidateInteger(in, "X")
		assert.True(t, domain.IsKind(err, domain.KindInvalidFormat), "input %v", in)
	}

	for _, in := range []domain.Raw{domain.Str("0"), domain.Str("-3"), domain.Num(0.5)} {
		_, err := ValidateInteger(in, "X")
		assert.True(t, domain.IsKind(err, domain.KindOutOfRange), "input %v", in)
		assert.Equal(t, "X must be positive", err.Error())
	}
}

func TestValidateLoanInputs(t *testing.T) {
	a, r, y, err := ValidateLoanInputs(domain.Str("10000"), domain.Num(5.5), domain.Str("3"))
	require.NoError(t, err)
	assert.Equal(t, 10000.0, a)
	assert.Equal(t, 5.5, r)
	assert.Equal(t, 3, y)

	cases := []struct {
		amount, rate, years domain.Raw
		msg                 string
	}{
		{domain.Num(-5000), domain.Num(4.5), domain.Int(4), "Loan amount must be positive"},
		{domain.Num(5000), domain.Num(-1), domain.Int(4), "Interest rate cannot be negative"},
		{domain.Num(5000), domain.Num(4.5), domain.Str("four"), "Loan term must be a valid integer"},
		// first failing field wins
		{domain.Str("x"), domain.Num(-1), domain.Int(0), "Loan amount must be a valid number"},
	}
	for _, c := range cases {
		_, _, _, err := ValidateLoanInputs(c.amount, c.rate, c.years)
		require.Error(t, err)
		assert.Equal(t, c.msg, err.Error())
	}
}

func TestValidateSavingsInputs(t *testing.T) {
	tg, c, r, err := ValidateSavingsInputs(domain.Num(5000), domain.Str("200"), domain.Num(0))
	require.NoError(t, err)
	assert.Equal(t, 5000.0, tg)
	assert.Equal(t, 200.0, c)
	assert.Equal(t, 0.0, r)

	_, _, _, err = ValidateSavingsInputs(domain.Num(5000), domain.Num(0), domain.Num(3))
	assert.EqualError(t, err, "Monthly contribution must be positive")

	_, _, _, err = ValidateSavingsInputs(domain.Num(0), domain.Num(0), domain.Num(3))
	assert.EqualError(t, err, "Target amount must be positive")

	_, _, _, err = ValidateSavingsInputs(domain.Num(1), domain.Num(1), domain.Num(-3))
	assert.EqualError(t, err, "Interest rate cannot be negative")
}
