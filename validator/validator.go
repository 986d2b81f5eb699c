// Package validator turns raw caller input into range-checked numbers.
//
// Every function is pure. Failures are *domain.FinanceError values whose
// message embeds the field name, e.g. "Loan amount must be positive".
package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"finance-calculator/domain"
)

// ValidatePositiveNumber parses v and requires it to be greater than zero.
func ValidatePositiveNumber(v domain.Raw, field string) (float64, error) {
	const op = "validator.positive_number"

	n, err := parseNumber(op, v, field)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, outOfRange(op, field, fmt.Sprintf("%s must be positive", field))
	}
	return n, nil
}

// ValidateNonNegativeNumber parses v and requires it to be zero or greater.
func ValidateNonNegativeNumber(v domain.Raw, field string) (float64, error) {
	const op = "validator.non_negative_number"

	n, err := parseNumber(op, v, field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, outOfRange(op, field, fmt.Sprintf("%s cannot be negative", field))
	}
	return n, nil
}

// ValidateInteger parses v as a positive integer. Strings must be integer
// literals ("5.5" and "5.0" are rejected); numbers are truncated toward zero.
func ValidateInteger(v domain.Raw, field string) (int, error) {
	const op = "validator.integer"

	n, ok := parseInteger(v)
	if !ok {
		return 0, invalidFormat(op, field, fmt.Sprintf("%s must be a valid integer", field))
	}
	if n <= 0 {
		return 0, outOfRange(op, field, fmt.Sprintf("%s must be positive", field))
	}
	return n, nil
}

// ValidateLoanInputs checks amount, rate and term in that order and returns
// the first failure unchanged.
func ValidateLoanInputs(amount, rate, years domain.Raw) (float64, float64, int, error) {
	a, err := ValidatePositiveNumber(amount, "Loan amount")
	if err != nil {
		return 0, 0, 0, err
	}
	r, err := ValidateNonNegativeNumber(rate, "Interest rate")
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := ValidateInteger(years, "Loan term")
	if err != nil {
		return 0, 0, 0, err
	}
	return a, r, y, nil
}

// ValidateSavingsInputs checks target, contribution and rate in that order.
func ValidateSavingsInputs(target, contribution, rate domain.Raw) (float64, float64, float64, error) {
	t, err := ValidatePositiveNumber(target, "Target amount")
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := ValidatePositiveNumber(contribution, "Monthly contribution")
	if err != nil {
		return 0, 0, 0, err
	}
	r, err := ValidateNonNegativeNumber(rate, "Interest rate")
	if err != nil {
		return 0, 0, 0, err
	}
	return t, c, r, nil
}

func parseNumber(op string, v domain.Raw, field string) (float64, error) {
	n, ok := normalize(v)
	if !ok {
		return 0, invalidFormat(op, field, fmt.Sprintf("%s must be a valid number", field))
	}
	return n, nil
}

// Bounds on numeric text. A decimal whose order of magnitude is past
// maxMagnitude cannot be a finite float64, and one below minMagnitude rounds
// to zero; neither is expanded.
const (
	maxNumberLength = 100
	maxMagnitude    = 310
	minMagnitude    = -330
)

// normalize is the single place where both sides of the union become a float.
func normalize(v domain.Raw) (float64, bool) {
	if n, ok := v.Number(); ok {
		return n, isFinite(n)
	}

	s, ok := v.Text()
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if len(s) > maxNumberLength {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	if d.IsZero() {
		return 0, true
	}

	// d = coefficient * 10^exponent with coefficient < 10^NumDigits
	magnitude := int64(d.Exponent()) + int64(d.NumDigits())
	switch {
	case magnitude > maxMagnitude:
		return 0, false
	case magnitude < minMagnitude:
		return 0, true
	}
	n, _ := d.Float64()
	return n, isFinite(n)
}

func parseInteger(v domain.Raw) (int, bool) {
	if n, ok := v.Number(); ok {
		if !isFinite(n) {
			return 0, false
		}
		t := math.Trunc(n)
		if t > math.MaxInt32 || t < math.MinInt32 {
			return 0, false
		}
		return int(t), true
	}

	s, ok := v.Text()
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

func invalidFormat(op, field, msg string) error {
	return &domain.FinanceError{Op: op, Kind: domain.KindInvalidFormat, Field: field, Msg: msg}
}

func outOfRange(op, field, msg string) error {
	return &domain.FinanceError{Op: op, Kind: domain.KindOutOfRange, Field: field, Msg: msg}
}
