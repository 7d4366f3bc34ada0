package build_report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kesamokki/booking-service/internal/domain"
)

// UseCase use case для отчёта по выручке и заполняемости
type UseCase struct {
	invoiceRepo     InvoiceRepository
	reservationRepo ReservationRepository
	cottageRepo     CottageRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	invoiceRepo InvoiceRepository,
	reservationRepo ReservationRepository,
	cottageRepo CottageRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		invoiceRepo:     invoiceRepo,
		reservationRepo: reservationRepo,
		cottageRepo:     cottageRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute строит отчёт. Все данные читаются в одной транзакции только для чтения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !req.Actor.Staff {
		uc.logger.Warn("BuildReport: user=%d is not staff", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	filter, cottageID, err := parseFilters(req)
	if err != nil {
		uc.logger.Warn("BuildReport: %v", err)
		return nil, err
	}

	from, until := Window(uc.timeProvider.Today(), req.Start, req.End)
	if span := MonthSpan(from, until); span > MaxWindowMonths {
		uc.logger.Warn("BuildReport: window %s - %s is %d months", req.Start, req.End, span)
		return nil, fmt.Errorf("%w: report window must not exceed %d months", ErrInvalidInput, MaxWindowMonths)
	}
	filter.BilledFrom, filter.BilledUntil = &from, &until
	months := Months(from, until)

	uc.logger.Info("BuildReport: window %s - %s, status=%s, cottage=%s",
		from.Format(domain.DateFormat), until.Format(domain.DateFormat), req.Status, req.Cottage)

	var (
		invoices     []*domain.Invoice
		reservations []*domain.Reservation
		cottages     []*domain.Cottage
	)

	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if invoices, err = uc.invoiceRepo.List(txCtx, filter); err != nil {
			return fmt.Errorf("%w: failed to list invoices: %w", ErrInternal, err)
		}
		if reservations, err = uc.reservationRepo.ListOccupying(txCtx, from, until, cottageID); err != nil {
			return fmt.Errorf("%w: failed to list reservations: %w", ErrInternal, err)
		}
		if cottages, err = uc.cottageRepo.List(txCtx, domain.CottagesFilter{}); err != nil {
			return fmt.Errorf("%w: failed to list cottages: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("BuildReport: %v", err)
		return nil, err
	}

	revenue := Revenue(months, invoices)
	total := decimal.Zero
	resp := &Response{
		Months:    MonthLabels(months),
		Revenue:   make([]float64, len(revenue)),
		Occupancy: []CottageOccupancy{},
		Start:     from.Format(domain.DateFormat),
		End:       until.AddDate(0, 0, -1).Format(domain.DateFormat),
	}
	for i, sum := range revenue {
		resp.Revenue[i] = sum.Round(2).InexactFloat64()
		total = total.Add(sum)
	}
	resp.TotalRevenue = total.Round(2).InexactFloat64()

	byCottage := make(map[int64][]*domain.Reservation)
	for _, r := range reservations {
		byCottage[r.CottageID] = append(byCottage[r.CottageID], r)
	}

	for _, c := range cottages {
		if cottageID != nil && c.ID != *cottageID {
			continue
		}
		resp.Occupancy = append(resp.Occupancy, CottageOccupancy{
			CottageID:   c.ID,
			CottageName: c.Name,
			Data:        Occupancy(months, byCottage[c.ID]),
			Color:       Color(c.ID),
		})
	}

	return resp, nil
}

func parseFilters(req *Request) (domain.InvoicesFilter, *int64, error) {
	var (
		filter    domain.InvoicesFilter
		cottageID *int64
	)

	if req.Status != "" && req.Status != FilterAll {
		status := domain.InvoiceStatus(req.Status)
		if !status.IsValid() {
			return filter, nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
		}
		filter.Status = &status
	}

	if req.Cottage != "" && req.Cottage != FilterAll {
		id, err := strconv.ParseInt(req.Cottage, 10, 64)
		if err != nil || id <= 0 {
			return filter, nil, fmt.Errorf("%w: cottage must be an id or %q", ErrInvalidInput, FilterAll)
		}
		cottageID = &id
	}

	return filter, cottageID, nil
}
