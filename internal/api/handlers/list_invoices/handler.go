package list_invoices

import (
	"errors"
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	"github.com/kesamokki/booking-service/internal/service/invoices"
	"github.com/kesamokki/booking-service/internal/service/invoices/models"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgInvalidCustomer = "некорректный ID клиента"
	msgInvalidStatus   = "некорректный статус счёта"
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

// Handle GET /api/v1/invoices
// Query params: status (pending|paid|cancelled|overdue), customer_id (только для сотрудников)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	customerID, err := handlers.QueryInt64(r, "customer_id")
	if err != nil {
		h.logger.Warn("GET /invoices - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomer)
		return
	}

	req := &models.ListRequest{
		CustomerID: customerID,
		Status:     handlers.QueryString(r, "status"),
	}

	result, err := h.service.List(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvalidInput):
			h.logger.Warn("GET /invoices - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /invoices - Failed to list invoices: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /invoices - Invoices retrieved: user_id=%d, count=%d", actor.UserID, len(result.Invoices))
	handlers.RespondJSON(w, http.StatusOK, result)
}
