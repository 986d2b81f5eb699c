package http

import (
	"net/http"

	"go.uber.org/zap"

	"finance-calculator/buildinfo"
	"finance-calculator/service"
)

type HistoryHandler struct {
	finance *service.FinanceService
	logger  *zap.Logger
}

func NewHistoryHandler(finance *service.FinanceService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{finance: finance, logger: logger}
}

func (h *HistoryHandler) List(w http.ResponseWriter, _ *http.Request) {
	records, err := h.finance.History()
	if err != nil {
		h.logger.Error("error listing history", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, records)
}

func healthHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": buildinfo.Version,
		})
	}
}
