package create_cottage

import (
	"errors"
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	"github.com/kesamokki/booking-service/internal/service/cottages"
	"github.com/kesamokki/booking-service/internal/service/cottages/models"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgSlugTaken          = "slug уже занят"
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

// Handle POST /api/v1/cottages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CottageInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cottages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /cottages - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, cottages.ErrAccessDenied):
			h.logger.Warn("POST /cottages - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cottages.ErrInvalidInput):
			h.logger.Warn("POST /cottages - Invalid cottage: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, cottages.ErrSlugTaken):
			h.logger.Warn("POST /cottages - Slug taken: slug=%s", req.Slug)
			handlers.RespondConflict(w, msgSlugTaken)

		default:
			h.logger.Error("POST /cottages - Failed to create cottage: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cottages - Cottage created: id=%d, slug=%s, user_id=%d", result.ID, result.Slug, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
