package list_reservations

import (
	"errors"
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	"github.com/kesamokki/booking-service/internal/service/reservations"
	"github.com/kesamokki/booking-service/internal/service/reservations/models"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgInvalidCustomer  = "некорректный ID клиента"
	msgInvalidCottageID = "некорректный ID коттеджа"
	msgInvalidStatus    = "некорректный статус брони"
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

// Handle GET /api/v1/reservations
// Query params: customer_id (только для сотрудников), cottage_id, status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	customerID, err := handlers.QueryInt64(r, "customer_id")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomer)
		return
	}

	cottageID, err := handlers.QueryInt64(r, "cottage_id")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid cottage ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCottageID)
		return
	}

	req := &models.ListRequest{
		CustomerID: customerID,
		CottageID:  cottageID,
		Status:     handlers.QueryString(r, "status"),
	}

	result, err := h.service.List(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved: user_id=%d, count=%d", actor.UserID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
