package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"finance-calculator/calculator"
	"finance-calculator/domain"
	"finance-calculator/repository"
	"finance-calculator/validator"
)

// FinanceService sequences validation, calculation and result shaping for the
// three plans. It never returns an error: failures become envelopes.
type FinanceService struct {
	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewFinanceService creates a new FinanceService with the given history and cache.
func NewFinanceService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *FinanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// LoanPaymentPlan computes the monthly payment and the totals of a loan.
func (s *FinanceService) LoanPaymentPlan(ctx context.Context, amount, rate, years domain.Raw) domain.LoanPlan {
	inputs := map[string]domain.Raw{"amount": amount, "rate": rate, "years": years}

	return serve(ctx, s, domain.OpLoanPayment, inputs, func() domain.LoanPlan {
		a, r, y, err := validator.ValidateLoanInputs(amount, rate, years)
		if err != nil {
			return domain.LoanPlan{Envelope: s.failed(domain.OpLoanPayment, err)}
		}
		plan, err := s.loanPlan(a, r, y)
		if err != nil {
			return domain.LoanPlan{Envelope: s.failed(domain.OpLoanPayment, err)}
		}
		return plan
	})
}

// loanPlan runs the calculator on validated inputs.
func (s *FinanceService) loanPlan(amount, rate float64, years int) (domain.LoanPlan, error) {
	payment, err := calculator.MonthlyPayment(amount, rate, years)
	if err != nil {
		return domain.LoanPlan{}, err
	}

	total := payment * float64(years*calculator.MonthsPerYear)
	if err := finiteOutputs("service.loan_plan", total); err != nil {
		return domain.LoanPlan{}, err
	}
	return domain.LoanPlan{
		Envelope:       domain.Succeeded(),
		MonthlyPayment: payment,
		TotalPayment:   calculator.RoundCurrency(total),
		TotalInterest:  calculator.RoundCurrency(total - amount),
	}, nil
}

// SavingsPlan computes how long fixed monthly contributions take to reach a target.
func (s *FinanceService) SavingsPlan(ctx context.Context, target, contribution, rate domain.Raw) domain.SavingsPlan {
	inputs := map[string]domain.Raw{"target": target, "contribution": contribution, "rate": rate}

	return serve(ctx, s, domain.OpSavingsPlan, inputs, func() domain.SavingsPlan {
		t, c, r, err := validator.ValidateSavingsInputs(target, contribution, rate)
		if err != nil {
			return domain.SavingsPlan{Envelope: s.failed(domain.OpSavingsPlan, err)}
		}

		years, err := calculator.SavingsGoalTime(t, c, r)
		if err != nil {
			return domain.SavingsPlan{Envelope: s.failed(domain.OpSavingsPlan, err)}
		}

		months := years * calculator.MonthsPerYear
		if err := finiteOutputs("service.savings_plan", months, c*months); err != nil {
			return domain.SavingsPlan{Envelope: s.failed(domain.OpSavingsPlan, err)}
		}
		return domain.SavingsPlan{
			Envelope:           domain.Succeeded(),
			YearsToGoal:        years,
			MonthsToGoal:       calculator.RoundCurrency(months),
			TotalContributions: calculator.RoundCurrency(c * months),
		}
	})
}

// InterestPlan computes simple interest, or compound interest when compound is set.
func (s *FinanceService) InterestPlan(ctx context.Context, principal, rate, timeYears domain.Raw, compound bool, frequency domain.Raw) domain.InterestPlan {
	inputs := map[string]domain.Raw{"principal": principal, "rate": rate, "time": timeYears}
	if compound {
		inputs["compound"] = domain.Str("true")
		inputs["frequency"] = frequency
	}

	return serve(ctx, s, domain.OpInterest, inputs, func() domain.InterestPlan {
		plan, err := s.interestPlan(principal, rate, timeYears, compound, frequency)
		if err != nil {
			return domain.InterestPlan{Envelope: s.failed(domain.OpInterest, err)}
		}
		return plan
	})
}

func (s *FinanceService) interestPlan(principal, rate, timeYears domain.Raw, compound bool, frequency domain.Raw) (domain.InterestPlan, error) {
	p, err := validator.ValidatePositiveNumber(principal, "Principal")
	if err != nil {
		return domain.InterestPlan{}, err
	}
	r, err := validator.ValidateNonNegativeNumber(rate, "Interest rate")
	if err != nil {
		return domain.InterestPlan{}, err
	}
	t, err := validator.ValidatePositiveNumber(timeYears, "Time period")
	if err != nil {
		return domain.InterestPlan{}, err
	}

	if compound {
		f, err := validator.ValidateInteger(frequency, "Compound frequency")
		if err != nil {
			return domain.InterestPlan{}, err
		}
		final, err := calculator.CompoundInterest(p, r, t, f)
		if err != nil {
			return domain.InterestPlan{}, err
		}
		return domain.InterestPlan{
			Envelope:       domain.Succeeded(),
			Type:           domain.InterestCompound,
			FinalAmount:    final,
			InterestEarned: calculator.RoundCurrency(final - p),
		}, nil
	}

	earned, err := calculator.SimpleInterest(p, r, t)
	if err != nil {
		return domain.InterestPlan{}, err
	}
	if err := finiteOutputs("service.interest_plan", p+earned); err != nil {
		return domain.InterestPlan{}, err
	}
	return domain.InterestPlan{
		Envelope:       domain.Succeeded(),
		Type:           domain.InterestSimple,
		InterestEarned: earned,
		FinalAmount:    p + earned,
	}, nil
}

// finiteOutputs rejects derived values that overflowed; JSON cannot carry them.
func finiteOutputs(op string, values ...float64) error {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return &domain.FinanceError{Op: op, Kind: domain.KindInvalidDomain, Msg: "Calculation result is out of range"}
		}
	}
	return nil
}

func (s *FinanceService) failed(op domain.Operation, err error) domain.Envelope {
	s.logger.Debug("calculation rejected",
		zap.String("operation", string(op)),
		zap.String("kind", string(domain.KindOf(err))),
		zap.Error(err),
	)
	return domain.Failed(err)
}

type plan interface {
	OK() bool
	Fields() map[string]float64
}

// serve answers from the cache when possible, otherwise computes and stores
// the plan. Cache and history failures are logged and never change the result.
func serve[T plan](ctx context.Context, s *FinanceService, op domain.Operation, inputs map[string]domain.Raw, compute func() T) T {
	key := cacheKey(op, inputs)

	if result, ok := s.lookup(ctx, key); ok {
		var cached T
		err := json.Unmarshal([]byte(result), &cached)
		if err == nil {
			s.logger.Debug("cache hit", zap.String("key", key))
			s.record(op, inputs, cached)
			return cached
		}
		s.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
	}

	result := compute()

	if encoded, err := json.Marshal(result); err != nil {
		s.logger.Warn("failed to encode plan for cache", zap.String("key", key), zap.Error(err))
	} else if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
		s.logger.Warn("failed to cache plan", zap.String("key", key), zap.Error(err))
	}

	s.record(op, inputs, result)
	return result
}

func (s *FinanceService) lookup(ctx context.Context, key string) (string, bool) {
	val, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return val, ok
}

// record saves successful plans to the history (non-critical).
func (s *FinanceService) record(op domain.Operation, inputs map[string]domain.Raw, p plan) {
	if !p.OK() {
		return
	}

	in := make(map[string]string, len(inputs))
	for k, v := range inputs {
		in[k] = v.String()
	}
	rec := domain.CalculationRecord{
		ID:        uuid.New(),
		Operation: op,
		Inputs:    in,
		Outputs:   p.Fields(),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(rec); err != nil {
		s.logger.Warn("failed to save calculation", zap.String("operation", string(op)), zap.Error(err))
	}
}

// History returns the saved calculations, oldest first.
func (s *FinanceService) History() ([]domain.CalculationRecord, error) {
	return s.repo.List()
}

// cacheKey hashes the raw inputs so the key length does not depend on the
// caller's text.
func cacheKey(op domain.Operation, inputs map[string]domain.Raw) string {
	names := make([]string, 0, len(inputs))
	for k := range inputs {
		names = append(names, k)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, k := range names {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(inputs[k].Key()))
		h.Write([]byte{0})
	}
	return cacheKeyPrefix + ":" + string(op) + ":" + hex.EncodeToString(h.Sum(nil))
}
