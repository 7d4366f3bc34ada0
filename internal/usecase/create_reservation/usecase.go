package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/kesamokki/booking-service/internal/domain"
	cottageRepo "github.com/kesamokki/booking-service/internal/infra/storage/cottage"
	reservationRepo "github.com/kesamokki/booking-service/internal/infra/storage/reservation"
	customerClient "github.com/kesamokki/booking-service/internal/integrations/customerservice"
	"github.com/kesamokki/booking-service/internal/service/reservations/models"
)

// UseCase use case для создания брони
type UseCase struct {
	cottageRepo     CottageRepository
	reservationRepo ReservationRepository
	customerClient  CustomerServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cottageRepo CottageRepository,
	reservationRepo ReservationRepository,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		cottageRepo:     cottageRepo,
		reservationRepo: reservationRepo,
		customerClient:  customerClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
// под блокировкой строки коттеджа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("CreateReservation: customer=%d, cottage=%d, start=%s, end=%s, guests=%d",
		req.CustomerID, req.CottageID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Снимок контактных данных клиента
	snapshot, err := uc.customerSnapshot(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	today := uc.timeProvider.Today()
	stay := domain.Stay{StartDate: req.StartDate, EndDate: req.EndDate, Guests: req.Guests}

	var result *domain.Reservation

	// 3. Проверки и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем коттедж (FOR UPDATE)
		cottage, err := uc.cottageRepo.GetByID(txCtx, req.CottageID)
		if err != nil {
			if errors.Is(err, cottageRepo.ErrCottageNotFound) {
				uc.logger.Warn("CreateReservation: cottage id=%d not found", req.CottageID)
				return ErrCottageNotFound
			}
			uc.logger.Error("CreateReservation: failed to get cottage id=%d: %v", req.CottageID, err)
			return fmt.Errorf("%w: failed to get cottage: %w", ErrInternal, err)
		}

		if !cottage.IsBookable() {
			uc.logger.Warn("CreateReservation: cottage id=%d is inactive", cottage.ID)
			return domain.ErrCottageInactive
		}

		// 3.2. Инварианты проживания
		if err := domain.ValidateStay(cottage, stay, today); err != nil {
			uc.logger.Warn("CreateReservation: stay rejected: %v", err)
			return err
		}

		// 3.3. Пересекающиеся активные брони (FOR UPDATE)
		existing, err := uc.reservationRepo.FindOverlapping(txCtx, cottage.ID, stay.StartDate, stay.EndDate, 0)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to get overlapping reservations: %w", ErrInternal, err)
		}

		if conflict := domain.FindConflict(existing, stay.StartDate, stay.EndDate, 0); conflict != nil {
			uc.logger.Warn("CreateReservation: cottage id=%d already booked by reservation id=%d (%s - %s)",
				cottage.ID, conflict.ID, conflict.StartDate.Format(domain.DateFormat), conflict.EndDate.Format(domain.DateFormat))
			return domain.ErrOverlap
		}

		// 3.4. Создаём бронь со статусом pending
		created, err := uc.reservationRepo.Create(txCtx, domain.NewReservation(cottage, req.CustomerID, snapshot, stay))
		if err != nil {
			if errors.Is(err, reservationRepo.ErrOverlap) {
				uc.logger.Warn("CreateReservation: overlap rejected by database constraint for cottage id=%d", cottage.ID)
				return domain.ErrOverlap
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d total=%s", result.ID, result.TotalPrice.StringFixed(2))
	return models.FromDomainReservation(result), nil
}

// customerSnapshot получает контактные данные клиента
// При недоступности сервиса клиентов бронь создаётся с пустым снимком
func (uc *UseCase) customerSnapshot(ctx context.Context, customerID int64) (domain.CustomerSnapshot, error) {
	customer, err := uc.customerClient.GetCustomerWithGracefulDegradation(ctx, customerID)
	if err != nil {
		switch {
		case errors.Is(err, customerClient.ErrCustomerNotFound):
			uc.logger.Warn("CreateReservation: customer id=%d not found", customerID)
			return domain.CustomerSnapshot{}, ErrCustomerNotFound
		case errors.Is(err, customerClient.ErrServiceDegraded):
			uc.logger.Warn("CreateReservation: customer snapshot skipped for id=%d: %v", customerID, err)
			return domain.CustomerSnapshot{}, nil
		}
		uc.logger.Error("CreateReservation: failed to get customer id=%d: %v", customerID, err)
		return domain.CustomerSnapshot{}, fmt.Errorf("%w: failed to get customer: %w", ErrInternal, err)
	}

	return domain.CustomerSnapshot{
		FullName: customer.FullName,
		Email:    customer.Email,
		Phone:    customer.Phone,
		Address:  customer.Address,
	}, nil
}
