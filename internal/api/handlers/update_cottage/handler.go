package update_cottage

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
	msgInvalidCottageID   = "некорректный ID коттеджа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "коттедж не найден"
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

// Handle PUT /api/v1/cottages/{id}
// Полная замена данных коттеджа; active=false снимает коттедж с бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	cottageID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /cottages/{id} - Invalid cottage ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCottageID)
		return
	}

	var req models.CottageInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cottages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PUT /cottages/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Update(r.Context(), actor, cottageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cottages.ErrAccessDenied):
			h.logger.Warn("PUT /cottages/{id} - Access denied: cottage_id=%d, user_id=%d", cottageID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cottages.ErrCottageNotFound):
			h.logger.Warn("PUT /cottages/{id} - Cottage not found: cottage_id=%d", cottageID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cottages.ErrInvalidInput):
			h.logger.Warn("PUT /cottages/{id} - Invalid cottage: cottage_id=%d, error=%v", cottageID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, cottages.ErrSlugTaken):
			h.logger.Warn("PUT /cottages/{id} - Slug taken: cottage_id=%d, slug=%s", cottageID, req.Slug)
			handlers.RespondConflict(w, msgSlugTaken)

		default:
			h.logger.Error("PUT /cottages/{id} - Failed to update cottage: cottage_id=%d, error=%v", cottageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cottages/{id} - Cottage updated: cottage_id=%d, active=%t", cottageID, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}
