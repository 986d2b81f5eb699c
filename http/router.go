package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"finance-calculator/service"
)

// Deps are the collaborators the API needs. A nil Limiter disables rate limiting.
type Deps struct {
	Finance *service.FinanceService
	Terms   *service.TermComparisonService
	Limiter *RateLimiter
	Logger  *zap.Logger
}

func NewRouter(d Deps) *mux.Router {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	limit := func(h http.HandlerFunc) http.Handler {
		if d.Limiter == nil {
			return h
		}
		return RateLimitMiddleware(d.Limiter, h)
	}

	loanHandler := NewLoanHandler(d.Finance, d.Terms, logger)
	savingsHandler := NewSavingsHandler(d.Finance, logger)
	interestHandler := NewInterestHandler(d.Finance, logger)
	historyHandler := NewHistoryHandler(d.Finance, logger)

	r := mux.NewRouter()
	r.Use(RequestID, AccessLog(logger))

	r.Handle("/healthz", healthHandler(logger)).Methods(http.MethodGet)
	r.Handle("/loan/payment", limit(loanHandler.CalculatePayment)).Methods(http.MethodPost)
	r.Handle("/loan/compare-terms", limit(loanHandler.CompareTerms)).Methods(http.MethodPost)
	r.Handle("/savings/plan", limit(savingsHandler.CalculatePlan)).Methods(http.MethodPost)
	r.Handle("/interest", limit(interestHandler.CalculateInterest)).Methods(http.MethodPost)
	r.Handle("/history", limit(historyHandler.List)).Methods(http.MethodGet)

	return r
}
