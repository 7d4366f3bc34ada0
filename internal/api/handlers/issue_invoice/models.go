package issue_invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kesamokki/booking-service/internal/domain"
	issueInvoice "github.com/kesamokki/booking-service/internal/usecase/issue_invoice"
)

// IssueInvoiceRequest HTTP request model; все поля необязательны
type IssueInvoiceRequest struct {
	BilledAt *string          `json:"billed_at,omitempty"` // "2026-07-10"
	DueDate  *string          `json:"due_date,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Notes    string           `json:"notes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *IssueInvoiceRequest) ToUseCaseRequest(actor domain.Actor, reservationID int64) (*issueInvoice.Request, error) {
	billedAt, err := parseOptionalDate(r.BilledAt)
	if err != nil {
		return nil, fmt.Errorf("billed_at: %w", err)
	}
	dueDate, err := parseOptionalDate(r.DueDate)
	if err != nil {
		return nil, fmt.Errorf("due_date: %w", err)
	}

	return &issueInvoice.Request{
		Actor:         actor,
		ReservationID: reservationID,
		BilledAt:      billedAt,
		DueDate:       dueDate,
		Amount:        r.Amount,
		Notes:         r.Notes,
	}, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
