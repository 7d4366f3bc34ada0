package invoices

import (
	"context"
	"errors"
	"fmt"

	"github.com/kesamokki/booking-service/internal/domain"
	cottageRepo "github.com/kesamokki/booking-service/internal/infra/storage/cottage"
	invoiceRepo "github.com/kesamokki/booking-service/internal/infra/storage/invoice"
	reservationRepo "github.com/kesamokki/booking-service/internal/infra/storage/reservation"
	"github.com/kesamokki/booking-service/internal/service/invoices/models"
)

// Service сервис для работы с выставленными счетами
type Service struct {
	invoiceRepo     InvoiceRepository
	reservationRepo ReservationRepository
	cottageRepo     CottageRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса счетов
func NewService(
	invoiceRepo InvoiceRepository,
	reservationRepo ReservationRepository,
	cottageRepo CottageRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		invoiceRepo:     invoiceRepo,
		reservationRepo: reservationRepo,
		cottageRepo:     cottageRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID возвращает счёт. Клиент видит только счета своих броней
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.InvoiceResponse, error) {
	inv, _, err := s.getAccessible(ctx, "GetByID", actor, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainInvoice(inv, s.timeProvider.Today()), nil
}

// List возвращает счета с количеством по статусам
// Для клиента выборка ограничена счетами его броней
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListRequest) (*models.InvoiceListResponse, error) {
	today := s.timeProvider.Today()
	filter := domain.InvoicesFilter{CustomerID: req.CustomerID}

	if !actor.Staff {
		filter.CustomerID = &actor.UserID
	}

	if req.Status != nil && *req.Status != "" {
		switch status := domain.InvoiceStatus(*req.Status); {
		case *req.Status == models.StatusOverdue:
			filter.OverdueAt = &today
		case status.IsValid():
			filter.Status = &status
		default:
			s.logger.Warn("List: invalid status=%s for user=%d", *req.Status, actor.UserID)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
	}

	list, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	counts, err := s.invoiceRepo.Counts(ctx, filter.CustomerID, today)
	if err != nil {
		s.logger.Error("List: counts error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: List - counts error: %w", ErrInternal, err)
	}

	resp := &models.InvoiceListResponse{
		Invoices: make([]models.InvoiceResponse, 0, len(list)),
		Counts:   models.FromDomainCounts(counts),
	}
	for _, inv := range list {
		resp.Invoices = append(resp.Invoices, *models.FromDomainInvoice(inv, today))
	}

	s.logger.Info("List: fetched %d invoices for user=%d", len(list), actor.UserID)
	return resp, nil
}

// Print собирает печатную форму счёта
func (s *Service) Print(ctx context.Context, actor domain.Actor, id int64) (*models.PrintResponse, error) {
	inv, res, err := s.getAccessible(ctx, "Print", actor, id)
	if err != nil {
		return nil, err
	}

	c, err := s.cottageRepo.GetByID(ctx, res.CottageID)
	if err != nil {
		if errors.Is(err, cottageRepo.ErrCottageNotFound) {
			s.logger.Error("Print: cottage id=%d of reservation id=%d is missing", res.CottageID, res.ID)
		}
		return nil, fmt.Errorf("%w: Print - cottage lookup: %w", ErrInternal, err)
	}

	return models.BuildPrint(inv, res, c, s.timeProvider.Today()), nil
}

// MarkPaid отмечает счёт оплаченным. Повторная оплата отклоняется
func (s *Service) MarkPaid(ctx context.Context, actor domain.Actor, id int64) (*models.InvoiceResponse, error) {
	s.logger.Info("MarkPaid: invoice id=%d by user=%d", id, actor.UserID)

	return s.transition(ctx, "MarkPaid", actor, id, func(inv *domain.Invoice) error {
		return inv.MarkPaid(s.timeProvider.Now())
	})
}

// Cancel аннулирует неоплаченный счёт
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, id int64) (*models.InvoiceResponse, error) {
	s.logger.Info("Cancel: invoice id=%d by user=%d", id, actor.UserID)

	return s.transition(ctx, "Cancel", actor, id, func(inv *domain.Invoice) error {
		return inv.Cancel()
	})
}

func (s *Service) transition(
	ctx context.Context,
	op string,
	actor domain.Actor,
	id int64,
	apply func(inv *domain.Invoice) error,
) (*models.InvoiceResponse, error) {
	if !actor.Staff {
		s.logger.Warn("%s: user=%d is not staff", op, actor.UserID)
		return nil, ErrAccessDenied
	}

	var inv *domain.Invoice
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		inv, err = s.get(txCtx, op, id)
		if err != nil {
			return err
		}

		if err := apply(inv); err != nil {
			s.logger.Warn("%s: invoice id=%d rejected: %v", op, id, err)
			return err
		}

		if err := s.invoiceRepo.UpdateStatus(txCtx, inv); err != nil {
			if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
				return ErrInvoiceNotFound
			}
			s.logger.Error("%s: repository error for invoice id=%d: %v", op, id, err)
			return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: invoice %s is now %s", op, inv.Number, inv.Status)
	return models.FromDomainInvoice(inv, s.timeProvider.Today()), nil
}

// getAccessible возвращает счёт и его бронь, проверяя доступ по владельцу брони
func (s *Service) getAccessible(ctx context.Context, op string, actor domain.Actor, id int64) (*domain.Invoice, *domain.Reservation, error) {
	inv, err := s.get(ctx, op, id)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.reservationRepo.GetByID(ctx, inv.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Error("%s: reservation id=%d of invoice id=%d is missing", op, inv.ReservationID, id)
		}
		return nil, nil, fmt.Errorf("%w: %s - reservation lookup: %w", ErrInternal, op, err)
	}

	if !actor.CanAccess(res.CustomerID) {
		s.logger.Warn("%s: access denied for user=%d to invoice id=%d", op, actor.UserID, id)
		return nil, nil, ErrAccessDenied
	}

	return inv, res, nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("%s: invoice id=%d not found", op, id)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("%s: repository error for invoice id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return inv, nil
}
