package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/kesamokki/booking-service/internal/domain"
	cottageRepo "github.com/kesamokki/booking-service/internal/infra/storage/cottage"
	invoiceRepo "github.com/kesamokki/booking-service/internal/infra/storage/invoice"
	reservationRepo "github.com/kesamokki/booking-service/internal/infra/storage/reservation"
	"github.com/kesamokki/booking-service/internal/service/reservations/models"
)

// UseCase use case для переноса брони на другие даты
type UseCase struct {
	cottageRepo     CottageRepository
	reservationRepo ReservationRepository
	invoiceRepo     InvoiceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cottageRepo CottageRepository,
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		cottageRepo:     cottageRepo,
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute переносит бронь. Правила те же, что при создании, сама бронь
// исключается из проверки пересечений; стоимость пересчитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("RescheduleReservation: reservation=%d, user=%d, start=%s, end=%s",
		req.ReservationID, req.Actor.UserID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.ReservationID <= 0 || req.StartDate.IsZero() || req.EndDate.IsZero() {
		uc.logger.Warn("RescheduleReservation: invalid request for reservation=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: reservation id, start and end dates are required", ErrInvalidInput)
	}

	today := uc.timeProvider.Today()

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем бронь
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("RescheduleReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		if !req.Actor.CanAccess(res.CustomerID) {
			uc.logger.Warn("RescheduleReservation: access denied for user=%d to reservation id=%d", req.Actor.UserID, res.ID)
			return ErrAccessDenied
		}

		if !res.CanBeRescheduled() {
			uc.logger.Warn("RescheduleReservation: reservation id=%d is %s", res.ID, res.Status)
			return fmt.Errorf("%w: reservation is %s", domain.ErrInvalidTransition, res.Status)
		}

		// Сумма выставленного счёта равна стоимости брони, поэтому после выставления даты не меняются
		if err := uc.checkNotInvoiced(txCtx, res.ID); err != nil {
			return err
		}

		// 2. Блокируем коттедж
		cottage, err := uc.cottageRepo.GetByID(txCtx, res.CottageID)
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to get cottage id=%d: %v", res.CottageID, err)
			if errors.Is(err, cottageRepo.ErrCottageNotFound) {
				return fmt.Errorf("%w: cottage id=%d of reservation is missing", ErrInternal, res.CottageID)
			}
			return fmt.Errorf("%w: failed to get cottage: %w", ErrInternal, err)
		}

		if !cottage.IsBookable() {
			uc.logger.Warn("RescheduleReservation: cottage id=%d is inactive", cottage.ID)
			return domain.ErrCottageInactive
		}

		stay := domain.Stay{StartDate: req.StartDate, EndDate: req.EndDate, Guests: res.Guests}
		if req.Guests != nil {
			stay.Guests = *req.Guests
		}

		if err := domain.ValidateStay(cottage, stay, today); err != nil {
			uc.logger.Warn("RescheduleReservation: stay rejected: %v", err)
			return err
		}

		// 3. Пересечения без учёта самой брони
		existing, err := uc.reservationRepo.FindOverlapping(txCtx, cottage.ID, stay.StartDate, stay.EndDate, res.ID)
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to get overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to get overlapping reservations: %w", ErrInternal, err)
		}

		if conflict := domain.FindConflict(existing, stay.StartDate, stay.EndDate, res.ID); conflict != nil {
			uc.logger.Warn("RescheduleReservation: conflicts with reservation id=%d", conflict.ID)
			return domain.ErrOverlap
		}

		// 4. Переносим и сохраняем
		res.Reschedule(cottage, stay)

		if err := uc.reservationRepo.Update(txCtx, res); err != nil {
			if errors.Is(err, reservationRepo.ErrOverlap) {
				uc.logger.Warn("RescheduleReservation: overlap rejected by database constraint for reservation id=%d", res.ID)
				return domain.ErrOverlap
			}
			uc.logger.Error("RescheduleReservation: failed to update reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %w", ErrInternal, err)
		}

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleReservation: reservation id=%d moved to %s - %s, total=%s",
		result.ID, result.StartDate.Format(domain.DateFormat), result.EndDate.Format(domain.DateFormat), result.TotalPrice.StringFixed(2))
	return models.FromDomainReservation(result), nil
}

// checkNotInvoiced отклоняет перенос брони с действующим счётом
// Аннулированный счёт переносу не мешает
func (uc *UseCase) checkNotInvoiced(ctx context.Context, reservationID int64) error {
	inv, err := uc.invoiceRepo.GetByReservationID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			return nil
		}
		uc.logger.Error("RescheduleReservation: failed to get invoice of reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: failed to get invoice: %w", ErrInternal, err)
	}

	if inv.Status == domain.InvoiceStatusCancelled {
		return nil
	}

	uc.logger.Warn("RescheduleReservation: reservation id=%d has invoice %s (%s)", reservationID, inv.Number, inv.Status)
	return fmt.Errorf("%w: invoice %s is %s", domain.ErrReservationInvoiced, inv.Number, inv.Status)
}
