package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/kesamokki/booking-service/internal/domain"
	invoiceRepo "github.com/kesamokki/booking-service/internal/infra/storage/invoice"
	reservationRepo "github.com/kesamokki/booking-service/internal/infra/storage/reservation"
	"github.com/kesamokki/booking-service/internal/service/reservations/models"
)

// Service сервис для работы с бронями
type Service struct {
	reservationRepo ReservationRepository
	invoiceRepo     InvoiceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает бронь. Клиент видит только свои брони, сотрудник - любые
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, actor.UserID)

	res, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccess(res.CustomerID) {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// List получает брони. Для клиента фильтр по клиенту принудительно равен его ID
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationsFilter{
		CustomerID: req.CustomerID,
		CottageID:  req.CottageID,
	}

	if !actor.Staff {
		filter.CustomerID = &actor.UserID
	}

	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for user=%d", *req.Status, actor.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for user=%d", len(list), actor.UserID)
	return models.FromDomainReservationList(list), nil
}

// Cancel отменяет бронь. Владелец отменяет свою бронь, сотрудник - любую
// Стоимость брони не меняется. Неоплаченный счёт брони аннулируется в той же транзакции
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, actor.UserID)

	check := func(res *domain.Reservation) error {
		if !actor.CanAccess(res.CustomerID) {
			s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", actor.UserID, id)
			return ErrAccessDenied
		}
		return nil
	}

	return s.transition(ctx, "Cancel", id, domain.ReservationStatusCancelled, check, s.cancelPendingInvoice)
}

// Confirm подтверждает бронь. Доступно только сотрудникам
func (s *Service) Confirm(ctx context.Context, actor domain.Actor, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: confirming reservation id=%d by user=%d", id, actor.UserID)

	if !actor.Staff {
		s.logger.Warn("Confirm: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	return s.transition(ctx, "Confirm", id, domain.ReservationStatusConfirmed, nil, nil)
}

// CompleteFinished переводит подтверждённые брони, дата выезда которых наступила, в completed
func (s *Service) CompleteFinished(ctx context.Context, actor domain.Actor) (*models.CompleteFinishedResponse, error) {
	if !actor.Staff {
		s.logger.Warn("CompleteFinished: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	today := s.timeProvider.Today()
	n, err := s.reservationRepo.CompleteFinished(ctx, today)
	if err != nil {
		s.logger.Error("CompleteFinished: repository error: %v", err)
		return nil, fmt.Errorf("%w: CompleteFinished - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CompleteFinished: completed %d reservations ending on or before %s", n, today.Format(domain.DateFormat))
	return &models.CompleteFinishedResponse{Completed: n}, nil
}

// transition меняет статус брони в транзакции с блокировкой строки
// check выполняет дополнительные проверки до смены статуса, after - действия после неё в той же транзакции
func (s *Service) transition(
	ctx context.Context,
	op string,
	id int64,
	next domain.ReservationStatus,
	check func(res *domain.Reservation) error,
	after func(ctx context.Context, res *domain.Reservation) error,
) (*models.ReservationResponse, error) {
	var res *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.get(txCtx, op, id)
		if err != nil {
			return err
		}

		if check != nil {
			if err := check(res); err != nil {
				return err
			}
		}

		if !res.Status.CanTransitionTo(next) {
			s.logger.Warn("%s: reservation id=%d cannot move from %s to %s", op, id, res.Status, next)
			return fmt.Errorf("%w: reservation is %s", domain.ErrInvalidTransition, res.Status)
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, next); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
			return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
		}

		res.Status = next

		if after != nil {
			return after(txCtx, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: reservation id=%d is now %s", op, id, next)
	return models.FromDomainReservation(res), nil
}

// cancelPendingInvoice аннулирует неоплаченный счёт отменённой брони
// Оплаченный счёт остаётся как есть
func (s *Service) cancelPendingInvoice(ctx context.Context, res *domain.Reservation) error {
	inv, err := s.invoiceRepo.GetByReservationID(ctx, res.ID)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			return nil
		}
		s.logger.Error("Cancel: failed to get invoice of reservation id=%d: %v", res.ID, err)
		return fmt.Errorf("%w: Cancel - invoice lookup: %w", ErrInternal, err)
	}

	if inv.Status != domain.InvoiceStatusPending {
		return nil
	}

	if err := inv.Cancel(); err != nil {
		return err
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, inv); err != nil {
		s.logger.Error("Cancel: failed to cancel invoice %s: %v", inv.Number, err)
		return fmt.Errorf("%w: Cancel - invoice update: %w", ErrInternal, err)
	}

	s.logger.Info("Cancel: invoice %s of reservation id=%d cancelled", inv.Number, res.ID)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return res, nil
}
