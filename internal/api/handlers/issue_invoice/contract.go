package issue_invoice

import (
	"context"

	"github.com/kesamokki/booking-service/internal/service/invoices/models"
	issueInvoice "github.com/kesamokki/booking-service/internal/usecase/issue_invoice"
)

type IssueInvoiceUseCase interface {
	Execute(ctx context.Context, req *issueInvoice.Request) (*models.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
