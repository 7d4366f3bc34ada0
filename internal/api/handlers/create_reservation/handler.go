package create_reservation

import (
	"errors"
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	"github.com/kesamokki/booking-service/internal/domain"
	createReservation "github.com/kesamokki/booking-service/internal/usecase/create_reservation"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCottageNotFound    = "коттедж не найден"
	msgCustomerNotFound   = "клиент не найден"
	msgOverlap            = "коттедж уже забронирован на выбранные даты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOverlap):
			h.logger.Warn("POST /reservations - Dates overlap: cottage_id=%d, start=%s, end=%s",
				req.CottageID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, createReservation.ErrCottageNotFound):
			h.logger.Warn("POST /reservations - Cottage not found: cottage_id=%d", req.CottageID)
			handlers.RespondNotFound(w, msgCottageNotFound)

		case errors.Is(err, createReservation.ErrCustomerNotFound):
			h.logger.Warn("POST /reservations - Customer not found: customer_id=%d", useCaseReq.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, domain.ErrValidation), errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Rejected: cottage_id=%d, error=%v", req.CottageID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: cottage_id=%d, customer_id=%d, error=%v",
				req.CottageID, useCaseReq.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, cottage_id=%d, customer_id=%d",
		result.ID, result.CottageID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
