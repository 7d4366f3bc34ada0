package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/pkg/dbmetrics"
	"github.com/kesamokki/booking-service/pkg/pgerr"
	"github.com/kesamokki/booking-service/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"cottage_id",
	"customer_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_address",
	"start_date",
	"end_date",
	"guests",
	"total_price",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий броней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронь
// Пересечение с активной бронью того же коттеджа отклоняется ограничением
// reservations_no_overlap даже при гонке двух транзакций
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"cottage_id",
			"customer_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_address",
			"start_date",
			"end_date",
			"guests",
			"total_price",
			"status",
		).
		Values(
			res.CottageID,
			res.CustomerID,
			res.Customer.FullName,
			res.Customer.Email,
			res.Customer.Phone,
			res.Customer.Address,
			dateArg(res.StartDate),
			dateArg(res.EndDate),
			res.Guests,
			res.TotalPrice,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	return res, nil
}

// GetByID получает бронь по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// List получает брони по фильтру, сначала ближайшие заезды
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("start_date DESC", "id DESC")

	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.CottageID != nil {
		builder = builder.Where(squirrel.Eq{"cottage_id": *filter.CottageID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	return r.query(ctx, "List", builder)
}

// FindOverlapping получает активные (pending, confirmed) брони коттеджа, пересекающиеся с [start, end)
// excludeID - бронь, которую сейчас изменяют (0 - не исключать)
// Внутри транзакции найденные строки блокируются
func (r *Repository) FindOverlapping(ctx context.Context, cottageID int64, start, end time.Time, excludeID int64) ([]*domain.Reservation, error) {
	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"cottage_id": cottageID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveReservationStatuses)}).
		Where(squirrel.Lt{"start_date": dateArg(end)}).
		Where(squirrel.Gt{"end_date": dateArg(start)}).
		OrderBy("start_date ASC")

	if excludeID != 0 {
		builder = builder.Where(squirrel.NotEq{"id": excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	return r.query(ctx, "FindOverlapping", builder)
}

// ListOccupying получает брони, занимающие коттеджи в [from, to)
// Учитываются pending, confirmed и completed
func (r *Repository) ListOccupying(ctx context.Context, from, to time.Time, cottageID *int64) ([]*domain.Reservation, error) {
	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"status": statusStrings(domain.OccupyingReservationStatuses)}).
		Where(squirrel.Lt{"start_date": dateArg(to)}).
		Where(squirrel.Gt{"end_date": dateArg(from)}).
		OrderBy("cottage_id ASC", "start_date ASC")

	if cottageID != nil {
		builder = builder.Where(squirrel.Eq{"cottage_id": *cottageID})
	}

	return r.query(ctx, "ListOccupying", builder)
}

// Update сохраняет даты, количество гостей, стоимость и статус брони
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("start_date", dateArg(res.StartDate)).
		Set("end_date", dateArg(res.EndDate)).
		Set("guests", res.Guests).
		Set("total_price", res.TotalPrice).
		Set("status", res.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrReservationNotFound
	}
	if err != nil {
		return mapWriteError("Update", err)
	}

	return nil
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("UpdateStatus", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// CompleteFinished переводит подтверждённые брони с датой выезда не позже today в completed
// Возвращает количество обновлённых броней
func (r *Repository) CompleteFinished(ctx context.Context, today time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.ReservationStatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.ReservationStatusConfirmed}).
		Where(squirrel.LtOrEq{"end_date": dateArg(today)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return reservations, nil
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerr.IsExclusionViolation(err):
		return fmt.Errorf("%w: %s: %w", ErrOverlap, op, err)
	case pgerr.IsCheckViolation(err):
		return fmt.Errorf("%w: %s - %s: %w", ErrConstraint, op, pgerr.Constraint(err), err)
	}
	return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
}

// dateArg передаёт дату как строку YYYY-MM-DD, чтобы значение DATE не зависело
// от часового пояса сессии
func dateArg(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID,
		&res.CottageID,
		&res.CustomerID,
		&res.Customer.FullName,
		&res.Customer.Email,
		&res.Customer.Phone,
		&res.Customer.Address,
		&res.StartDate,
		&res.EndDate,
		&res.Guests,
		&res.TotalPrice,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.StartDate = domain.DateOf(res.StartDate)
	res.EndDate = domain.DateOf(res.EndDate)

	return &res, nil
}
