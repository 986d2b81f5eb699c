package http

import (
	"net/http"

	"go.uber.org/zap"

	"finance-calculator/domain"
	"finance-calculator/service"
)

type SavingsHandler struct {
	finance *service.FinanceService
	logger  *zap.Logger
}

func NewSavingsHandler(finance *service.FinanceService, logger *zap.Logger) *SavingsHandler {
	return &SavingsHandler{finance: finance, logger: logger}
}

func (h *SavingsHandler) CalculatePlan(w http.ResponseWriter, r *http.Request) {
	var input domain.SavingsInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	plan := h.finance.SavingsPlan(r.Context(), input.Target, input.Contribution, input.Rate)
	writeJSON(w, h.logger, statusFor(plan.Success), plan)
}
