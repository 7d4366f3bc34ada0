package complete_finished

import (
	"errors"
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	"github.com/kesamokki/booking-service/internal/service/reservations"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/complete-finished
// Переводит в completed подтверждённые брони с датой выезда не позже сегодняшней
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.CompleteFinished(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /reservations/complete-finished - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /reservations/complete-finished - Failed to complete reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/complete-finished - Completed: count=%d, user_id=%d", result.Completed, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
