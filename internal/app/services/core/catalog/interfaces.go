package catalog

import (
	"context"
	"io"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]responses.Service, error)
	GetServiceByID(ctx context.Context, serviceID string) (*responses.Service, error)
	CreateService(ctx context.Context, request *requests.CreateService) (*responses.Service, error)
	UpdateService(ctx context.Context, serviceID string, request *requests.UpdateService) (*responses.Service, error)
	UploadServiceImage(ctx context.Context, serviceID, fileName, contentType string, reader io.Reader, size int64) (*responses.Service, error)
	SeedDefaultServices(ctx context.Context) error
}
