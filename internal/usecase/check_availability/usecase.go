package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
	cottageRepo "github.com/kesamokki/booking-service/internal/infra/storage/cottage"
	"github.com/kesamokki/booking-service/pkg/ptr"
)

// UseCase use case для проверки, свободен ли коттедж на даты
type UseCase struct {
	cottageRepo     CottageRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cottageRepo CottageRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		cottageRepo:     cottageRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute проверяет доступность. Некорректные даты, неизвестный или неактивный
// коттедж дают available=false, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	start, errStart := time.Parse(domain.DateFormat, req.StartDate)
	end, errEnd := time.Parse(domain.DateFormat, req.EndDate)
	if errStart != nil || errEnd != nil || req.CottageID <= 0 || !start.Before(end) {
		uc.logger.Info("CheckAvailability: malformed request cottage=%d start=%q end=%q", req.CottageID, req.StartDate, req.EndDate)
		return unavailable(), nil
	}

	cottage, err := uc.cottageRepo.GetByID(ctx, req.CottageID)
	if err != nil {
		if errors.Is(err, cottageRepo.ErrCottageNotFound) {
			return unavailable(), nil
		}
		uc.logger.Error("CheckAvailability: failed to get cottage id=%d: %v", req.CottageID, err)
		return nil, fmt.Errorf("%w: failed to get cottage: %w", ErrInternal, err)
	}

	if !cottage.IsBookable() {
		return unavailable(), nil
	}

	existing, err := uc.reservationRepo.FindOverlapping(ctx, cottage.ID, start, end, 0)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get overlapping reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get overlapping reservations: %w", ErrInternal, err)
	}

	if domain.FindConflict(existing, start, end, 0) != nil {
		return unavailable(), nil
	}

	price := domain.CalculatePrice(cottage, start, end)

	return &Response{
		Available:      true,
		Nights:         ptr.Ptr(price.Nights),
		BasePriceTotal: ptr.Ptr(price.BasePriceTotal.StringFixed(2)),
		CleaningFee:    ptr.Ptr(price.CleaningFee.StringFixed(2)),
		TotalPrice:     ptr.Ptr(price.Total.StringFixed(2)),
	}, nil
}
