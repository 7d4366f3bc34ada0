package get_cottage

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/service/cottages"
)

const (
	msgMissingSlug = "slug коттеджа обязателен"
	msgNotFound    = "коттедж не найден"
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

// Handle GET /api/v1/cottages/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(mux.Vars(r)["slug"])
	if slug == "" {
		h.logger.Warn("GET /cottages/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, cottages.ErrCottageNotFound):
			h.logger.Warn("GET /cottages/{slug} - Cottage not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /cottages/{slug} - Failed to get cottage: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cottages/{slug} - Cottage retrieved: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
