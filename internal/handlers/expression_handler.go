// internal/handlers/expression_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_french_gapfill/internal/service"
	"go_french_gapfill/internal/webutil"
)

type ExpressionHandler struct {
	service service.ExpressionService
	logger  *slog.Logger
}

func NewExpressionHandler(s service.ExpressionService, logger *slog.Logger) *ExpressionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpressionHandler{
		service: s,
		logger:  logger,
	}
}

// ListExpressions returns every expression, unscoped by article.
func (h *ExpressionHandler) ListExpressions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListExpressions"))

	expressions, err := h.service.ListExpressions(r.Context())
	if err != nil {
		logger.Error("Error listing expressions in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, expressions)
}
