package catalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/dto/responses"
	"trimline-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	ServiceRepository contracts.ServiceRepository
	StorageService    contracts.StorageService
	Log               *zap.Logger
}

var (
	catalogUsecaseInstance CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(
	serviceRepository contracts.ServiceRepository,
	storageService contracts.StorageService,
	logger *zap.Logger,
) CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		instance := &catalogUsecase{
			ServiceRepository: serviceRepository,
			StorageService:    storageService,
			Log:               logger,
		}
		catalogUsecaseInstance = instance
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) ListServices(ctx context.Context) ([]responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, err := uc.ServiceRepository.FindActiveServices(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Service, 0, len(services))
	for _, service := range services {
		result = append(result, buildServiceResponse(&service))
	}
	return result, nil
}

func (uc *catalogUsecase) GetServiceByID(ctx context.Context, serviceID string) (*responses.Service, error) {
	service, err := uc.ServiceRepository.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}
	response := buildServiceResponse(service)
	return &response, nil
}

func (uc *catalogUsecase) CreateService(ctx context.Context, request *requests.CreateService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.CreateService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	service := &models.Service{
		Name:            request.Name,
		Description:     request.Description,
		Price:           request.Price,
		DurationMinutes: request.DurationMinutes,
		Category:        request.Category,
		Active:          true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	serviceID, err := uc.ServiceRepository.CreateService(ctx, service)
	if err != nil {
		return nil, err
	}

	created, err := uc.ServiceRepository.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	response := buildServiceResponse(created)
	return &response, nil
}

func (uc *catalogUsecase) UpdateService(ctx context.Context, serviceID string, request *requests.UpdateService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.UpdateService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	service, err := uc.ServiceRepository.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}

	if request.Name != "" {
		service.Name = request.Name
	}
	if request.Description != "" {
		service.Description = request.Description
	}
	if request.Price > 0 {
		service.Price = request.Price
	}
	if request.DurationMinutes > 0 {
		service.DurationMinutes = request.DurationMinutes
	}
	if request.Category != "" {
		service.Category = request.Category
	}
	if request.Active != nil {
		service.Active = *request.Active
	}
	service.UpdatedAt = time.Now()

	if err := uc.ServiceRepository.UpdateService(ctx, serviceID, service); err != nil {
		return nil, err
	}

	response := buildServiceResponse(service)
	return &response, nil
}

func (uc *catalogUsecase) UploadServiceImage(ctx context.Context, serviceID, fileName, contentType string, reader io.Reader, size int64) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.UploadServiceImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	service, err := uc.ServiceRepository.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}

	extension := filepath.Ext(fileName)
	switch extension {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return nil, exceptions.ErrImageValidation(fmt.Errorf("unsupported extension '%s'", extension))
	}

	objectName := fmt.Sprintf("services/%s_%s%s", serviceID, time.Now().Format("20060102_150405"), extension)
	objectURL, err := uc.StorageService.UploadObject(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	service.ImageURL = objectURL
	service.UpdatedAt = time.Now()
	if err := uc.ServiceRepository.UpdateService(ctx, serviceID, service); err != nil {
		return nil, err
	}

	response := buildServiceResponse(service)
	return &response, nil
}

// SeedDefaultServices inserts the launch catalog when the collection is empty.
func (uc *catalogUsecase) SeedDefaultServices(ctx context.Context) error {
	count, err := uc.ServiceRepository.CountServices(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	uc.Log.Info("catalogUsecase.SeedDefaultServices seeding empty catalog")

	now := time.Now()
	seeds := []models.Service{
		{
			Name:            "Classic Haircut",
			Description:     "Traditional haircut with scissors and clippers, includes wash and styling",
			Price:           50,
			DurationMinutes: 45,
			Category:        "haircut",
		},
		{
			Name:            "Taper Fade",
			Description:     "Modern taper fade with precise blending and sharp lines",
			Price:           60,
			DurationMinutes: 60,
			Category:        "haircut",
		},
		{
			Name:            "Beard Trim",
			Description:     "Professional beard shaping and trimming with hot towel finish",
			Price:           30,
			DurationMinutes: 30,
			Category:        "beard",
		},
		{
			Name:            "Haircut + Beard Combo",
			Description:     "Complete grooming package with haircut and beard trim",
			Price:           75,
			DurationMinutes: 75,
			Category:        "combo",
		},
	}

	for i := range seeds {
		seeds[i].Active = true
		seeds[i].TimeModel = models.TimeModel{CreatedAt: now, UpdatedAt: now}
		if _, err := uc.ServiceRepository.CreateService(ctx, &seeds[i]); err != nil {
			return err
		}
	}
	return nil
}

func buildServiceResponse(service *models.Service) responses.Service {
	return responses.Service{
		ID:              service.ID.Hex(),
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		Category:        service.Category,
		Active:          service.Active,
		ImageURL:        service.ImageURL,
	}
}
