package issue_invoice

import (
	"errors"
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	"github.com/kesamokki/booking-service/internal/domain"
	issueInvoice "github.com/kesamokki/booking-service/internal/usecase/issue_invoice"
)

const (
	msgUnauthorized         = "требуется авторизация"
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound             = "бронь не найдена"
	msgForbidden            = "доступ запрещен"
	msgInvoiceExists        = "счёт на эту бронь уже выставлен"
)

type Handler struct {
	useCase IssueInvoiceUseCase
	logger  Logger
}

func NewHandler(useCase IssueInvoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/invoice
// Тело необязательно: без него счёт выставляется сегодня на стоимость брони
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/invoice - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req IssueInvoiceRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /reservations/{id}/invoice - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, reservationID)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/invoice - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, issueInvoice.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/invoice - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, issueInvoice.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/invoice - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrInvoiceExists):
			h.logger.Warn("POST /reservations/{id}/invoice - Invoice exists: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgInvoiceExists)

		case errors.Is(err, domain.ErrValidation), errors.Is(err, issueInvoice.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/invoice - Rejected: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations/{id}/invoice - Failed to issue invoice: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/invoice - Invoice issued: reservation_id=%d, number=%s, amount=%s",
		reservationID, result.Number, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
