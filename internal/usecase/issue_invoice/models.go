package issue_invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kesamokki/booking-service/internal/domain"
)

// Request модель запроса на выставление счёта
// Незаполненные поля получают значения по умолчанию
type Request struct {
	Actor         domain.Actor
	ReservationID int64
	BilledAt      *time.Time       // по умолчанию сегодня
	DueDate       *time.Time       // по умолчанию BilledAt + due_days
	Amount        *decimal.Decimal // по умолчанию стоимость брони
	Notes         string
}
