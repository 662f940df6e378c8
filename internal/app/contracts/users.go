package contracts

import (
	"context"
	"trimline-service/internal/app/models"
)

type UserRepository interface {
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
}
