package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) GetProvider(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleProvider).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *ServiceGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *ServiceGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).Preload("Provider").First(&s, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *ServiceGormRepository) DeleteService(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Service{}, id))
}

// ListServices is a plain filtered scan; there is no search index.
func (r *ServiceGormRepository) ListServices(ctx context.Context, f catalog.Filter) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Preload("Provider")

	if f.ProviderID != nil {
		q = q.Where("provider_id = ?", *f.ProviderID)
	}

	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		like := "%" + escapeLike(query) + "%"
		q = q.Where(
			`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`,
			like, like,
		)
	}

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_hour >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_hour <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}
	if f.AvailableOnly {
		q = q.Where("available = ?", true)
	}

	var out []models.Service
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

var _ catalog.Repository = (*ServiceGormRepository)(nil)
