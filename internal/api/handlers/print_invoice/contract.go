package print_invoice

import (
	"context"

	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/internal/service/invoices/models"
)

type InvoiceService interface {
	Print(ctx context.Context, actor domain.Actor, id int64) (*models.PrintResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
