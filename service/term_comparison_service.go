package service

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"finance-calculator/calculator"
	"finance-calculator/domain"
	"finance-calculator/validator"
)

type TermComparisonService struct {
	finance *FinanceService
	logger  *zap.Logger
}

func NewTermComparisonService(finance *FinanceService, logger *zap.Logger) *TermComparisonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermComparisonService{
		finance: finance,
		logger:  logger,
	}
}

// CompareTerms evaluates every loan term between MinYears and MaxYears and
// ranks the ones whose payment fits MaxMonthlyPayment.
func (s *TermComparisonService) CompareTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	amount, err := validator.ValidatePositiveNumber(input.Amount, "Loan amount")
	if err != nil {
		return domain.TermComparisonResult{}, err
	}
	rate, err := validator.ValidateNonNegativeNumber(input.Rate, "Interest rate")
	if err != nil {
		return domain.TermComparisonResult{}, err
	}
	if err := validateTermRange(input); err != nil {
		return domain.TermComparisonResult{}, err
	}

	options := []domain.TermOption{}

	for years := input.MinYears; years <= input.MaxYears; years++ {
		plan, err := s.finance.loanPlan(amount, rate, years)
		if err != nil {
			s.logger.Warn("failed to calculate loan for term", zap.Int("years", years), zap.Error(err))
			continue
		}

		if plan.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		options = append(options, domain.TermOption{
			Years:          years,
			MonthlyPayment: plan.MonthlyPayment,
			TotalPayment:   plan.TotalPayment,
			TotalInterest:  plan.TotalInterest,
			Score:          score(plan, amount, rate, input, years),
			Reason:         reason(input.Preference),
		})
	}

	if len(options) == 0 {
		return domain.TermComparisonResult{}, invalidRequest("No loan term fits the maximum monthly payment")
	}

	// options are built shortest term first, so ties keep the shorter term ahead
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	s.logger.Debug("terms compared",
		zap.Int("evaluated", input.MaxYears-input.MinYears+1),
		zap.Int("eligible", len(options)),
		zap.Int("recommended_years", options[0].Years),
	)

	return domain.TermComparisonResult{
		RecommendedYears: options[0].Years,
		Options:          options,
	}, nil
}

func validateTermRange(input domain.TermComparisonInput) error {
	if input.MinYears <= 0 || input.MaxYears <= 0 {
		return invalidRequest("Loan terms must be positive")
	}
	if input.MinYears > input.MaxYears {
		return invalidRequest("Minimum term is greater than maximum term")
	}
	if input.MaxYears > MaxTermYears {
		return invalidRequest(fmt.Sprintf("Maximum term exceeds the limit of %d years", MaxTermYears))
	}
	if input.MaxYears-input.MinYears > MaxTermRangeYears {
		return invalidRequest(fmt.Sprintf("Term range exceeds the maximum of %d years", MaxTermRangeYears))
	}
	if input.MaxMonthlyPayment <= 0 {
		return invalidRequest("Maximum monthly payment must be positive")
	}
	if !input.Preference.Valid() {
		return invalidRequest(fmt.Sprintf("Unknown preference %q", input.Preference))
	}
	return nil
}

// score rates a term from 0 to 10, weighting interest, payment and term
// length according to the preference.
func score(
	plan domain.LoanPlan,
	amount, rate float64,
	input domain.TermComparisonInput,
	years int,
) float64 {
	maxPossibleInterest := amount * (rate / 100) * float64(input.MaxYears)
	minPossibleInterest := amount * (rate / 100) * float64(input.MinYears)
	interestRange := maxPossibleInterest - minPossibleInterest

	smallestPayment := amount / float64(input.MaxYears*calculator.MonthsPerYear)
	paymentRange := input.MaxMonthlyPayment - smallestPayment

	interestScore := 0.0
	paymentScore := 0.0
	termScore := 10.0

	if interestRange > 0 {
		interestScore = 10.0 * (1.0 - (plan.TotalInterest-minPossibleInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10.0 * (1.0 - (plan.MonthlyPayment-smallestPayment)/paymentRange)
	}
	if span := input.MaxYears - input.MinYears; span > 0 {
		termScore = 10.0 * (1.0 - float64(years-input.MinYears)/float64(span))
	}

	var total float64
	switch input.Preference {
	case domain.PreferMinimizeInterest:
		total = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case domain.PreferMinimizePayment:
		total = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case domain.PreferBalanced:
		total = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return calculator.RoundCurrency(total)
}

func reason(p domain.Preference) string {
	switch p {
	case domain.PreferMinimizeInterest:
		return "Term chosen to minimize total interest cost"
	case domain.PreferMinimizePayment:
		return "Term chosen to minimize the monthly payment"
	case domain.PreferBalanced:
		return "Balance between monthly payment and total cost"
	}
	return "Recommendation based on the given parameters"
}

func invalidRequest(msg string) error {
	return &domain.FinanceError{Op: "service.compare_terms", Kind: domain.KindInvalidRequest, Msg: msg}
}
