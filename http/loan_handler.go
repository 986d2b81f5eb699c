package http

import (
	"net/http"

	"go.uber.org/zap"

	"finance-calculator/domain"
	"finance-calculator/service"
)

type LoanHandler struct {
	finance *service.FinanceService
	terms   *service.TermComparisonService
	logger  *zap.Logger
}

func NewLoanHandler(finance *service.FinanceService, terms *service.TermComparisonService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{finance: finance, terms: terms, logger: logger}
}

func (h *LoanHandler) CalculatePayment(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	plan := h.finance.LoanPaymentPlan(r.Context(), input.Amount, input.Rate, input.Years)
	writeJSON(w, h.logger, statusFor(plan.Success), plan)
}

func (h *LoanHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	var input domain.TermComparisonInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.terms.CompareTerms(input)
	if err != nil {
		h.logger.Debug("error comparing terms", zap.Error(err))
		writeJSON(w, h.logger, http.StatusBadRequest, domain.Failed(err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
