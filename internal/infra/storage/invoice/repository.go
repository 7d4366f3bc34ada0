package invoice

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

const (
	constraintReservation = "invoices_reservation_unique"
	constraintNumber      = "invoices_number_unique"
)

var invoiceColumns = []string{
	"i.id",
	"i.reservation_id",
	"i.invoice_number",
	"i.billed_at",
	"i.due_date",
	"i.amount",
	"i.status",
	"i.paid_at",
	"i.notes",
	"i.created_at",
}

// Repository репозиторий счетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// NextNumber выдаёт следующий порядковый номер счёта из последовательности invoice_number_seq
// Номера не повторяются даже при откате транзакции
func (r *Repository) NextNumber(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("nextval('invoice_number_seq')").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: NextNumber - build query: %w", ErrBuildQuery, err)
	}

	var seq int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		return 0, fmt.Errorf("%w: NextNumber - scan: %w", ErrExecQuery, err)
	}

	return seq, nil
}

// Create сохраняет счёт
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns(
			"reservation_id",
			"invoice_number",
			"billed_at",
			"due_date",
			"amount",
			"status",
			"paid_at",
			"notes",
		).
		Values(
			inv.ReservationID,
			inv.Number,
			dateArg(inv.BilledAt),
			dateArg(inv.DueDate),
			inv.Amount,
			inv.Status,
			inv.PaidAt,
			inv.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			switch pgerr.Constraint(err) {
			case constraintReservation:
				return nil, ErrInvoiceExists
			case constraintNumber:
				return nil, ErrNumberTaken
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return inv, nil
}

// GetByID получает счёт по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	builder := psqlbuilder.Select(invoiceColumns...).
		From("invoices i").
		Where(squirrel.Eq{"i.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	return r.getOne(ctx, "GetByID", builder)
}

// GetByReservationID получает счёт, выставленный на бронь
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error) {
	builder := psqlbuilder.Select(invoiceColumns...).
		From("invoices i").
		Where(squirrel.Eq{"i.reservation_id": reservationID})

	return r.getOne(ctx, "GetByReservationID", builder)
}

// List получает счета по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.InvoicesFilter) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := applyFilter(psqlbuilder.Select(invoiceColumns...).From("invoices i"), filter).
		OrderBy("i.billed_at DESC", "i.id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return invoices, nil
}

// Counts считает счета по статусам; просроченные - pending со сроком оплаты раньше today
func (r *Repository) Counts(ctx context.Context, customerID *int64, today time.Time) (domain.InvoiceCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select().
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE i.status = ?)", domain.InvoiceStatusPending)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE i.status = ?)", domain.InvoiceStatusPaid)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE i.status = ?)", domain.InvoiceStatusCancelled)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE i.status = ? AND i.due_date < ?)", domain.InvoiceStatusPending, dateArg(today))).
		From("invoices i")
	builder = applyFilter(builder, domain.InvoicesFilter{CustomerID: customerID})

	query, args, err := builder.ToSql()
	if err != nil {
		return domain.InvoiceCounts{}, fmt.Errorf("%w: Counts - build select query: %w", ErrBuildQuery, err)
	}

	var counts domain.InvoiceCounts
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&counts.Pending,
		&counts.Paid,
		&counts.Cancelled,
		&counts.Overdue,
	)
	if err != nil {
		return domain.InvoiceCounts{}, fmt.Errorf("%w: Counts - scan: %w", ErrScanRow, err)
	}

	return counts, nil
}

// UpdateStatus сохраняет статус и время оплаты счёта
func (r *Repository) UpdateStatus(ctx context.Context, inv *domain.Invoice) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invoices").
		Set("status", inv.Status).
		Set("paid_at", inv.PaidAt).
		Where(squirrel.Eq{"id": inv.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, builder squirrel.SelectBuilder) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	inv, err := scanInvoice(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan invoice: %w", ErrScanRow, op, err)
	}

	return inv, nil
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.InvoicesFilter) squirrel.SelectBuilder {
	if filter.CustomerID != nil {
		builder = builder.
			Join("reservations r ON r.id = i.reservation_id").
			Where(squirrel.Eq{"r.customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"i.status": *filter.Status})
	}
	if filter.OverdueAt != nil {
		builder = builder.
			Where(squirrel.Eq{"i.status": domain.InvoiceStatusPending}).
			Where(squirrel.Lt{"i.due_date": dateArg(*filter.OverdueAt)})
	}
	if filter.BilledFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"i.billed_at": dateArg(*filter.BilledFrom)})
	}
	if filter.BilledUntil != nil {
		builder = builder.Where(squirrel.Lt{"i.billed_at": dateArg(*filter.BilledUntil)})
	}
	return builder
}

func dateArg(t time.Time) string {
	return t.Format(domain.DateFormat)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	var paidAt sql.NullTime

	err := row.Scan(
		&inv.ID,
		&inv.ReservationID,
		&inv.Number,
		&inv.BilledAt,
		&inv.DueDate,
		&inv.Amount,
		&inv.Status,
		&paidAt,
		&inv.Notes,
		&inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paidAt.Valid {
		t := paidAt.Time
		inv.PaidAt = &t
	}
	inv.BilledAt = domain.DateOf(inv.BilledAt)
	inv.DueDate = domain.DateOf(inv.DueDate)

	return &inv, nil
}
