package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return duplicate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserGormRepository) UpdateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	q := r.db.WithContext(ctx)
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var out []models.User
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

var _ user.Repository = (*UserGormRepository)(nil)
