package build_report

import (
	"errors"
	"net/http"

	"github.com/kesamokki/booking-service/internal/api/handlers"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	buildReport "github.com/kesamokki/booking-service/internal/usecase/build_report"
)

const (
	msgUnauthorized  = "требуется авторизация"
	msgForbidden     = "доступ запрещен"
	msgInvalidFilter = "некорректный фильтр отчёта"
)

type Handler struct {
	useCase BuildReportUseCase
	logger  Logger
}

func NewHandler(useCase BuildReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports
// Query params: start, end (YYYY-MM-DD), status (статус счёта или all), cottage (ID или all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	q := r.URL.Query()
	req := &buildReport.Request{
		Actor:   actor,
		Start:   q.Get("start"),
		End:     q.Get("end"),
		Status:  q.Get("status"),
		Cottage: q.Get("cottage"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, buildReport.ErrAccessDenied):
			h.logger.Warn("GET /reports - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, buildReport.ErrInvalidInput):
			h.logger.Warn("GET /reports - Invalid filter: status=%s, cottage=%s, error=%v", req.Status, req.Cottage, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reports - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports - Report built: start=%s, end=%s, months=%d, total_revenue=%.2f",
		result.Start, result.End, len(result.Months), result.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, result)
}
