package user

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Repository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
	ListUsers(ctx context.Context, role string) ([]models.User, error)
}
