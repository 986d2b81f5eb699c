// Package calculator evaluates the closed-form finance formulas.
//
// Callers are expected to validate inputs first; the checks here only reject
// values for which a formula is undefined.
package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"finance-calculator/domain"
)

// MonthsPerYear is the number of payment periods per year.
const MonthsPerYear = 12

// RoundCurrency rounds v to cents, half away from zero.
func RoundCurrency(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// SimpleInterest returns principal*rate*time/100. The result is not rounded.
func SimpleInterest(principal, ratePercent, timeYears float64) (float64, error) {
	const op = "calculator.simple_interest"

	if principal < 0 || ratePercent < 0 || timeYears < 0 {
		return 0, invalidDomain(op, "Values must be non-negative")
	}
	return finite(op, principal*ratePercent*timeYears/100)
}

// CompoundInterest returns the final amount after compounding frequency
// times per year, rounded to cents.
func CompoundInterest(principal, ratePercent, timeYears float64, frequency int) (float64, error) {
	const op = "calculator.compound_interest"

	if principal < 0 || ratePercent < 0 || timeYears < 0 || frequency <= 0 {
		return 0, invalidDomain(op, "Invalid input values")
	}

	f := float64(frequency)
	amount := principal * math.Pow(1+ratePercent/100/f, f*timeYears)
	return finite(op, RoundCurrency(amount))
}

// MonthlyPayment returns the fixed payment that amortizes loanAmount over
// years*12 monthly periods. A zero rate divides evenly and is not rounded.
func MonthlyPayment(loanAmount, annualRatePercent float64, years int) (float64, error) {
	const op = "calculator.monthly_payment"

	if loanAmount <= 0 || annualRatePercent < 0 || years <= 0 {
		return 0, invalidDomain(op, "Invalid loan parameters")
	}

	n := float64(years * MonthsPerYear)
	r := annualRatePercent / 100 / MonthsPerYear
	if r == 0 {
		return finite(op, loanAmount/n)
	}

	// (1+r)^n - 1 via Expm1/Log1p keeps precision when r is tiny
	growthMinusOne := math.Expm1(n * math.Log1p(r))
	payment := loanAmount * (growthMinusOne + 1) * (r / growthMinusOne)
	return finite(op, RoundCurrency(payment))
}

// SavingsGoalTime returns the years of fixed monthly contributions needed to
// reach targetAmount with monthly compounding. A zero rate is not rounded.
func SavingsGoalTime(targetAmount, monthlyContribution, annualRatePercent float64) (float64, error) {
	const op = "calculator.savings_goal_time"

	if targetAmount <= 0 || monthlyContribution <= 0 || annualRatePercent < 0 {
		return 0, invalidDomain(op, "Invalid savings parameters")
	}

	r := annualRatePercent / 100 / MonthsPerYear
	// x underflows to zero only for rates too small to matter
	x := targetAmount * r / monthlyContribution
	if x == 0 {
		return finite(op, targetAmount/(monthlyContribution*MonthsPerYear))
	}

	// future value of an annuity solved for the number of periods
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, invalidDomain(op, "Savings goal is unreachable with the given parameters")
	}
	months := math.Log1p(x) / math.Log1p(r)
	if math.IsInf(months, 0) || math.IsNaN(months) || months <= 0 {
		return 0, invalidDomain(op, "Savings goal is unreachable with the given parameters")
	}
	return RoundCurrency(months / MonthsPerYear), nil
}

func finite(op string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidDomain(op, "Calculation result is out of range")
	}
	return v, nil
}

func invalidDomain(op, msg string) error {
	return &domain.FinanceError{Op: op, Kind: domain.KindInvalidDomain, Msg: msg}
}
