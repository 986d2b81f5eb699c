package http

import (
	"net/http"

	"go.uber.org/zap"

	"finance-calculator/domain"
	"finance-calculator/service"
)

type InterestHandler struct {
	finance *service.FinanceService
	logger  *zap.Logger
}

func NewInterestHandler(finance *service.FinanceService, logger *zap.Logger) *InterestHandler {
	return &InterestHandler{finance: finance, logger: logger}
}

func (h *InterestHandler) CalculateInterest(w http.ResponseWriter, r *http.Request) {
	var input domain.InterestInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	plan := h.finance.InterestPlan(r.Context(), input.Principal, input.Rate, input.Time, input.Compound, input.FrequencyOrDefault())
	writeJSON(w, h.logger, statusFor(plan.Success), plan)
}
