package cancel_invoice

import (
	"context"

	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/internal/service/invoices/models"
)

type InvoiceService interface {
	Cancel(ctx context.Context, actor domain.Actor, id int64) (*models.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
