package list_cottages

import (
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
)

type Handler struct {
	service CottageService
	logger  Logger
}

func NewHandler(service CottageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cottages
// Возвращает только активные коттеджи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /cottages - Failed to list cottages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cottages - Cottages retrieved: count=%d", len(result.Cottages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
