package cancel_invoice

import (
	"errors"
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/internal/service/invoices"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgInvalidInvoiceID = "некорректный ID счёта"
	msgNotFound         = "счёт не найден"
	msgForbidden        = "доступ запрещен"
	msgCannotCancel     = "аннулировать можно только неоплаченный счёт"
)

type Handler struct {
	service InvoiceService
	logger  Logger
}

func NewHandler(service InvoiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/invoices/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	invoiceID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /invoices/{id}/cancel - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	result, err := h.service.Cancel(r.Context(), actor, invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvoiceNotFound):
			h.logger.Warn("PATCH /invoices/{id}/cancel - Invoice not found: invoice_id=%d", invoiceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, invoices.ErrAccessDenied):
			h.logger.Warn("PATCH /invoices/{id}/cancel - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrInvalidTransition):
			h.logger.Warn("PATCH /invoices/{id}/cancel - Cannot cancel: invoice_id=%d", invoiceID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /invoices/{id}/cancel - Failed to cancel invoice: invoice_id=%d, error=%v", invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /invoices/{id}/cancel - Invoice cancelled: invoice_id=%d, user_id=%d", invoiceID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
