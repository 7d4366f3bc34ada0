package cottages

import (
	"context"
	"errors"
	"fmt"

	"github.com/kesamokki/booking-service/internal/domain"
	cottageRepo "github.com/kesamokki/booking-service/internal/infra/storage/cottage"
	"github.com/kesamokki/booking-service/internal/service/cottages/models"
)

// maxSlugAttempts сколько суффиксов -2, -3, ... пробовать для сгенерированного slug
const maxSlugAttempts = 50

// Service сервис каталога коттеджей
type Service struct {
	cottageRepo CottageRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	cottageRepo CottageRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		cottageRepo: cottageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List возвращает активные коттеджи каталога
func (s *Service) List(ctx context.Context) (*models.CottageListResponse, error) {
	cottages, err := s.cottageRepo.List(ctx, domain.CottagesFilter{OnlyActive: true})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainCottageList(cottages), nil
}

// GetBySlug возвращает активный коттедж по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.CottageResponse, error) {
	c, err := s.cottageRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, cottageRepo.ErrCottageNotFound) {
			return nil, ErrCottageNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %w", ErrInternal, err)
	}

	if !c.Active {
		return nil, ErrCottageNotFound
	}

	return models.FromDomainCottage(c), nil
}

// Create добавляет коттедж в каталог. Доступно только сотрудникам
func (s *Service) Create(ctx context.Context, actor domain.Actor, in *models.CottageInput) (*models.CottageResponse, error) {
	s.logger.Info("Create: creating cottage name=%q by user=%d", in.Name, actor.UserID)

	if !actor.Staff {
		s.logger.Warn("Create: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	c := &domain.Cottage{Active: true}
	in.ApplyTo(c)

	if err := validateCottage(c); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slug, err := s.resolveSlug(txCtx, in.Slug, in.Name, 0)
		if err != nil {
			return err
		}
		c.Slug = slug

		if _, err := s.cottageRepo.Create(txCtx, c); err != nil {
			return s.mapWriteError("Create", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: created cottage id=%d slug=%s", c.ID, c.Slug)
	return models.FromDomainCottage(c), nil
}

// Update изменяет коттедж. Деактивация (active=false) убирает коттедж из каталога
// и запрещает новые брони, существующие брони сохраняются
func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, in *models.CottageInput) (*models.CottageResponse, error) {
	s.logger.Info("Update: updating cottage id=%d by user=%d", id, actor.UserID)

	if !actor.Staff {
		s.logger.Warn("Update: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	var c *domain.Cottage
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		c, err = s.cottageRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, cottageRepo.ErrCottageNotFound) {
				s.logger.Warn("Update: cottage id=%d not found", id)
				return ErrCottageNotFound
			}
			s.logger.Error("Update: repository error for cottage id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
		}

		in.ApplyTo(c)
		if err := validateCottage(c); err != nil {
			s.logger.Warn("Update: validation failed for cottage id=%d: %v", id, err)
			return err
		}

		if in.Slug != "" && in.Slug != c.Slug {
			slug, err := s.resolveSlug(txCtx, in.Slug, in.Name, c.ID)
			if err != nil {
				return err
			}
			c.Slug = slug
		}

		if err := s.cottageRepo.Update(txCtx, c); err != nil {
			if errors.Is(err, cottageRepo.ErrCottageNotFound) {
				return ErrCottageNotFound
			}
			return s.mapWriteError("Update", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: updated cottage id=%d active=%t", c.ID, c.Active)
	return models.FromDomainCottage(c), nil
}

// resolveSlug возвращает свободный slug: явно указанный должен быть свободен,
// сгенерированный из имени получает числовой суффикс при совпадении
func (s *Service) resolveSlug(ctx context.Context, requested, name string, excludeID int64) (string, error) {
	if requested != "" {
		slug := Slugify(requested)
		if slug == "" {
			return "", fmt.Errorf("%w: slug must contain latin letters or digits", ErrInvalidInput)
		}
		taken, err := s.cottageRepo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", fmt.Errorf("%w: resolveSlug - repository error: %w", ErrInternal, err)
		}
		if taken {
			return "", ErrSlugTaken
		}
		return slug, nil
	}

	base := Slugify(name)
	if base == "" {
		base = "cottage"
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		taken, err := s.cottageRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("%w: resolveSlug - repository error: %w", ErrInternal, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return "", ErrSlugTaken
}

func (s *Service) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, cottageRepo.ErrSlugTaken):
		return ErrSlugTaken
	case errors.Is(err, cottageRepo.ErrDuplicateImageOrder):
		return fmt.Errorf("%w: image order must be unique", ErrInvalidInput)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}

func validateCottage(c *domain.Cottage) error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case len([]rune(c.Name)) > domain.MaxCottageNameLen:
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxCottageNameLen)
	case len([]rune(c.Location)) > domain.MaxCottageLocation:
		return fmt.Errorf("%w: location must be at most %d characters", ErrInvalidInput, domain.MaxCottageLocation)
	case c.Beds < domain.MinBeds:
		return fmt.Errorf("%w: beds must be at least %d", ErrInvalidInput, domain.MinBeds)
	case c.BasePrice.IsNegative():
		return fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	case c.CleaningFee.IsNegative():
		return fmt.Errorf("%w: cleaning fee must not be negative", ErrInvalidInput)
	}

	seen := make(map[int]struct{}, len(c.Images))
	for _, img := range c.Images {
		if img.URL == "" {
			return fmt.Errorf("%w: image url is required", ErrInvalidInput)
		}
		if _, dup := seen[img.Order]; dup {
			return fmt.Errorf("%w: image order %d is used twice", ErrInvalidInput, img.Order)
		}
		seen[img.Order] = struct{}{}
	}

	return nil
}
