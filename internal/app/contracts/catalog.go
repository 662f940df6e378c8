package contracts

import (
	"context"
	"trimline-service/internal/app/models"
)

type ServiceRepository interface {
	FindActiveServices(ctx context.Context) ([]models.Service, error)
	FindServiceByID(ctx context.Context, serviceID string) (*models.Service, error)
	CreateService(ctx context.Context, service *models.Service) (string, error)
	UpdateService(ctx context.Context, serviceID string, service *models.Service) error
	CountServices(ctx context.Context) (int64, error)
}
