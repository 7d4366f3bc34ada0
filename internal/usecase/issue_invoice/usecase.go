package issue_invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/kesamokki/booking-service/internal/domain"
	invoiceRepo "github.com/kesamokki/booking-service/internal/infra/storage/invoice"
	reservationRepo "github.com/kesamokki/booking-service/internal/infra/storage/reservation"
	"github.com/kesamokki/booking-service/internal/service/invoices/models"
)

// UseCase use case для выставления счёта на бронь
type UseCase struct {
	reservationRepo ReservationRepository
	invoiceRepo     InvoiceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	dueDays         int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// dueDays - срок оплаты в днях от даты выставления
func NewUseCase(
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	dueDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		dueDays:         dueDays,
		logger:          logger,
	}
}

// Execute выставляет счёт. На бронь выставляется не больше одного счёта,
// номер берётся из последовательности базы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.InvoiceResponse, error) {
	uc.logger.Info("IssueInvoice: reservation=%d by user=%d", req.ReservationID, req.Actor.UserID)

	if !req.Actor.Staff {
		uc.logger.Warn("IssueInvoice: user=%d is not staff", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if len([]rune(req.Notes)) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	today := uc.timeProvider.Today()
	draft := domain.InvoiceDraft{
		BilledAt: req.BilledAt,
		DueDate:  req.DueDate,
		Amount:   req.Amount,
		Notes:    req.Notes,
	}

	var result *domain.Invoice

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем бронь
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("IssueInvoice: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("IssueInvoice: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		// 2. Счёт на бронь уже выставлен
		existing, err := uc.invoiceRepo.GetByReservationID(txCtx, res.ID)
		switch {
		case err == nil:
			uc.logger.Warn("IssueInvoice: reservation id=%d already has invoice %s", res.ID, existing.Number)
			return domain.ErrInvoiceExists
		case !errors.Is(err, invoiceRepo.ErrInvoiceNotFound):
			uc.logger.Error("IssueInvoice: failed to check existing invoice: %v", err)
			return fmt.Errorf("%w: failed to check existing invoice: %w", ErrInternal, err)
		}

		if !res.CanBeInvoiced() {
			uc.logger.Warn("IssueInvoice: reservation id=%d is %s", res.ID, res.Status)
			return fmt.Errorf("%w: reservation is %s", domain.ErrReservationNotBillable, res.Status)
		}

		// 3. Номер счёта
		seq, err := uc.invoiceRepo.NextNumber(txCtx)
		if err != nil {
			uc.logger.Error("IssueInvoice: failed to draw invoice number: %v", err)
			return fmt.Errorf("%w: failed to draw invoice number: %w", ErrInternal, err)
		}

		inv, err := domain.NewInvoice(res, domain.FormatInvoiceNumber(seq), draft, today, uc.dueDays)
		if err != nil {
			uc.logger.Warn("IssueInvoice: invoice rejected for reservation id=%d: %v", res.ID, err)
			return err
		}

		// 4. Сохраняем; уникальный индекс по reservation_id - последняя защита от дубля
		created, err := uc.invoiceRepo.Create(txCtx, inv)
		if err != nil {
			if errors.Is(err, invoiceRepo.ErrInvoiceExists) {
				uc.logger.Warn("IssueInvoice: duplicate invoice rejected by database for reservation id=%d", res.ID)
				return domain.ErrInvoiceExists
			}
			uc.logger.Error("IssueInvoice: failed to create invoice: %v", err)
			return fmt.Errorf("%w: failed to create invoice: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("IssueInvoice: issued %s for reservation id=%d amount=%s due=%s",
		result.Number, result.ReservationID, result.Amount.StringFixed(2), result.DueDate.Format(domain.DateFormat))
	return models.FromDomainInvoice(result, today), nil
}
