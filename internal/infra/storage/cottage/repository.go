package cottage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/pkg/dbmetrics"
	"github.com/kesamokki/booking-service/pkg/pgerr"
	"github.com/kesamokki/booking-service/pkg/psqlbuilder"
)

const (
	constraintSlug       = "cottages_slug_key"
	constraintImageOrder = "cottage_images_order_unique"
)

var cottageColumns = []string{
	"id",
	"slug",
	"name",
	"description",
	"location",
	"beds",
	"base_price",
	"cleaning_fee",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога коттеджей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория коттеджей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает коттедж вместе с изображениями
// Вызывать внутри транзакции, чтобы коттедж и изображения записались атомарно
func (r *Repository) Create(ctx context.Context, c *domain.Cottage) (*domain.Cottage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cottages").
		Columns(
			"slug",
			"name",
			"description",
			"location",
			"beds",
			"base_price",
			"cleaning_fee",
			"active",
		).
		Values(
			c.Slug,
			c.Name,
			c.Description,
			c.Location,
			c.Beds,
			c.BasePrice,
			c.CleaningFee,
			c.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, r.mapWriteError("Create", err)
	}

	if err := r.insertImages(ctx, c.ID, c.Images); err != nil {
		return nil, err
	}
	for i := range c.Images {
		c.Images[i].CottageID = c.ID
	}

	return c, nil
}

// Update обновляет коттедж и полностью заменяет список изображений
func (r *Repository) Update(ctx context.Context, c *domain.Cottage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cottages").
		Set("slug", c.Slug).
		Set("name", c.Name).
		Set("description", c.Description).
		Set("location", c.Location).
		Set("beds", c.Beds).
		Set("base_price", c.BasePrice).
		Set("cleaning_fee", c.CleaningFee).
		Set("active", c.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCottageNotFound
	}
	if err != nil {
		return r.mapWriteError("Update", err)
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("cottage_images").
		Where(squirrel.Eq{"cottage_id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build delete images query: %w", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Update - delete images: %w", ErrExecQuery, err)
	}

	return r.insertImages(ctx, c.ID, c.Images)
}

// GetByID получает коттедж по ID
// Внутри транзакции строка блокируется (FOR UPDATE): бронирования одного коттеджа
// создаются последовательно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Cottage, error) {
	builder := psqlbuilder.Select(cottageColumns...).
		From("cottages").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	return r.getOne(ctx, "GetByID", builder)
}

// GetBySlug получает коттедж по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Cottage, error) {
	builder := psqlbuilder.Select(cottageColumns...).
		From("cottages").
		Where(squirrel.Eq{"slug": slug})

	return r.getOne(ctx, "GetBySlug", builder)
}

// SlugExists проверяет, занят ли slug другим коттеджем
func (r *Repository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("1").
		From("cottages").
		Where(squirrel.Eq{"slug": slug})
	if excludeID != 0 {
		builder = builder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := builder.Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// List возвращает каталог коттеджей, отсортированный по имени
func (r *Repository) List(ctx context.Context, filter domain.CottagesFilter) ([]*domain.Cottage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(cottageColumns...).
		From("cottages").
		OrderBy("name ASC", "id ASC")

	if filter.OnlyActive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	cottages := make([]*domain.Cottage, 0)
	for rows.Next() {
		c, err := scanCottage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		cottages = append(cottages, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	if err := r.attachImages(ctx, cottages); err != nil {
		return nil, err
	}

	return cottages, nil
}

func (r *Repository) getOne(ctx context.Context, op string, builder squirrel.SelectBuilder) (*domain.Cottage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	c, err := scanCottage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCottageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan cottage: %w", ErrScanRow, op, err)
	}

	if err := r.attachImages(ctx, []*domain.Cottage{c}); err != nil {
		return nil, err
	}

	return c, nil
}

// attachImages загружает изображения одним запросом для всех коттеджей
func (r *Repository) attachImages(ctx context.Context, cottages []*domain.Cottage) error {
	if len(cottages) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]int64, len(cottages))
	byID := make(map[int64]*domain.Cottage, len(cottages))
	for i, c := range cottages {
		ids[i] = c.ID
		byID[c.ID] = c
		c.Images = make([]domain.CottageImage, 0)
	}

	query, args, err := psqlbuilder.Select("id", "cottage_id", "url", "alt_text", "sort_order").
		From("cottage_images").
		Where(squirrel.Eq{"cottage_id": ids}).
		OrderBy("cottage_id ASC", "sort_order ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachImages - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachImages - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.CottageImage
		if err := rows.Scan(&img.ID, &img.CottageID, &img.URL, &img.AltText, &img.Order); err != nil {
			return fmt.Errorf("%w: attachImages - scan row: %w", ErrScanRow, err)
		}
		if c, ok := byID[img.CottageID]; ok {
			c.Images = append(c.Images, img)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachImages - rows error: %w", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) insertImages(ctx context.Context, cottageID int64, images []domain.CottageImage) error {
	if len(images) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("cottage_images").
		Columns("cottage_id", "url", "alt_text", "sort_order")
	for _, img := range images {
		builder = builder.Values(cottageID, img.URL, img.AltText, img.Order)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertImages - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return r.mapWriteError("insertImages", err)
	}

	return nil
}

func (r *Repository) mapWriteError(op string, err error) error {
	if pgerr.IsUniqueViolation(err) {
		switch pgerr.Constraint(err) {
		case constraintSlug:
			return ErrSlugTaken
		case constraintImageOrder:
			return ErrDuplicateImageOrder
		}
	}
	return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCottage(row rowScanner) (*domain.Cottage, error) {
	var c domain.Cottage
	err := row.Scan(
		&c.ID,
		&c.Slug,
		&c.Name,
		&c.Description,
		&c.Location,
		&c.Beds,
		&c.BasePrice,
		&c.CleaningFee,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
