package check_availability

import (
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	checkAvailability "github.com/kesamokki/booking-service/internal/usecase/check_availability"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: cottage_id, start_date, end_date (YYYY-MM-DD)
// Некорректные параметры и неизвестный коттедж дают available=false, а не ошибку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cottageID, err := handlers.QueryInt64(r, "cottage_id")
	if err != nil {
		h.logger.Warn("GET /availability - Invalid cottage ID: %v", err)
		handlers.RespondJSON(w, http.StatusOK, &checkAvailability.Response{Available: false})
		return
	}

	req := &checkAvailability.Request{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if cottageID != nil {
		req.CottageID = *cottageID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /availability - Failed to check availability: cottage_id=%d, error=%v", req.CottageID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Checked: cottage_id=%d, start=%s, end=%s, available=%t",
		req.CottageID, req.StartDate, req.EndDate, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
