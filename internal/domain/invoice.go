package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus статус счёта
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusPending:   {InvoiceStatusPaid, InvoiceStatusCancelled},
	InvoiceStatusPaid:      nil,
	InvoiceStatusCancelled: nil,
}

// IsValid статус входит в перечисление
func (s InvoiceStatus) IsValid() bool {
	_, ok := invoiceTransitions[s]
	return ok
}

// CanTransitionTo допустим ли переход s -> next
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Ошибки правил выставления счетов
var (
	ErrInvoiceExists          = fmt.Errorf("%w: an invoice already exists for this reservation", ErrConflict)
	ErrReservationNotBillable = fmt.Errorf("%w: reservation must be confirmed before invoicing", ErrValidation)
	ErrInvalidDueDate         = fmt.Errorf("%w: due date must not be before billed date", ErrValidation)
	ErrNegativeAmount         = fmt.Errorf("%w: amount must not be negative", ErrValidation)
	ErrReservationInvoiced    = fmt.Errorf("%w: reservation is already invoiced", ErrValidation)
)

// Invoice счёт, выставленный на бронь. Связь с бронью неизменна после создания.
type Invoice struct {
	ID            int64
	ReservationID int64
	Number        string
	BilledAt      time.Time
	DueDate       time.Time
	Amount        decimal.Decimal
	Status        InvoiceStatus
	PaidAt        *time.Time
	Notes         string
	CreatedAt     time.Time
}

// IsOverdue счёт не оплачен и срок оплаты прошёл
func (i *Invoice) IsOverdue(today time.Time) bool {
	return i.Status == InvoiceStatusPending && DateOf(i.DueDate).Before(DateOf(today))
}

// MarkPaid переводит счёт в paid и фиксирует время оплаты
func (i *Invoice) MarkPaid(now time.Time) error {
	if !i.Status.CanTransitionTo(InvoiceStatusPaid) {
		return fmt.Errorf("%w: invoice %s is %s", ErrInvalidTransition, i.Number, i.Status)
	}
	i.Status = InvoiceStatusPaid
	i.PaidAt = &now
	return nil
}

// Cancel переводит счёт в cancelled
func (i *Invoice) Cancel() error {
	if !i.Status.CanTransitionTo(InvoiceStatusCancelled) {
		return fmt.Errorf("%w: invoice %s is %s", ErrInvalidTransition, i.Number, i.Status)
	}
	i.Status = InvoiceStatusCancelled
	return nil
}

// FormatInvoiceNumber форматирует порядковый номер счёта: INV-001, INV-1234
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("%s%0*d", InvoiceNumberPrefix, InvoiceNumberDigits, seq)
}

// InvoiceDraft параметры выставления счёта; nil-поля заполняются значениями по умолчанию
type InvoiceDraft struct {
	BilledAt *time.Time
	DueDate  *time.Time
	Amount   *decimal.Decimal
	Notes    string
}

// NewInvoice собирает счёт для брони
// Сумма по умолчанию равна стоимости брони, дата выставления - today,
// срок оплаты - через dueInDays дней после выставления
func NewInvoice(r *Reservation, number string, draft InvoiceDraft, today time.Time, dueInDays int) (*Invoice, error) {
	if !r.CanBeInvoiced() {
		return nil, fmt.Errorf("%w: reservation %d is %s", ErrReservationNotBillable, r.ID, r.Status)
	}

	billed := DateOf(today)
	if draft.BilledAt != nil {
		billed = DateOf(*draft.BilledAt)
	}

	due := billed.AddDate(0, 0, dueInDays)
	if draft.DueDate != nil {
		due = DateOf(*draft.DueDate)
	}
	if due.Before(billed) {
		return nil, ErrInvalidDueDate
	}

	amount := r.TotalPrice
	if draft.Amount != nil {
		amount = *draft.Amount
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	return &Invoice{
		ReservationID: r.ID,
		Number:        number,
		BilledAt:      billed,
		DueDate:       due,
		Amount:        amount,
		Status:        InvoiceStatusPending,
		Notes:         draft.Notes,
	}, nil
}

// InvoicesFilter фильтр списка счетов
type InvoicesFilter struct {
	CustomerID  *int64 // только счета броней клиента
	Status      *InvoiceStatus
	OverdueAt   *time.Time // только просроченные на эту дату
	BilledFrom  *time.Time // включительно
	BilledUntil *time.Time // не включительно
}

// InvoiceCounts количество счетов по статусам
type InvoiceCounts struct {
	Pending   int
	Paid      int
	Cancelled int
	Overdue   int
}
