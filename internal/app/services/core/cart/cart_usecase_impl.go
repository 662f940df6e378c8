package cart

import (
	"context"
	"fmt"
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

type cartUsecase struct {
	CartRepository    contracts.CartRepository
	ServiceRepository contracts.ServiceRepository
	Log               *zap.Logger
}

var (
	cartUsecaseInstance CartUsecase
	onceCartUsecase     sync.Once
)

func NewCartUsecase(
	cartRepository contracts.CartRepository,
	serviceRepository contracts.ServiceRepository,
	logger *zap.Logger,
) CartUsecase {
	onceCartUsecase.Do(func() {
		instance := &cartUsecase{
			CartRepository:    cartRepository,
			ServiceRepository: serviceRepository,
			Log:               logger,
		}
		cartUsecaseInstance = instance
	})
	return cartUsecaseInstance
}

func (uc *cartUsecase) GetCart(ctx context.Context, userID string) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.GetCart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	cart, err := uc.CartRepository.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildCartResponse(cart), nil
}

func (uc *cartUsecase) AddItem(ctx context.Context, userID string, request *requests.AddCartItem) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.AddItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingServiceIDKey, request.ServiceID),
	)

	service, err := uc.ServiceRepository.FindServiceByID(ctx, request.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.Active {
		return nil, exceptions.ErrServiceNotFound(nil)
	}

	cart, err := uc.CartRepository.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Instance id, so the same service can sit in the cart twice.
	item := models.CartItem{
		ID:              fmt.Sprintf("%s-%d", request.ServiceID, time.Now().UnixMilli()),
		ServiceID:       request.ServiceID,
		ServiceName:     service.Name,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		Category:        service.Category,
	}
	cart.Items = append(cart.Items, item)

	if err := uc.CartRepository.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	uc.Log.Info("cartUsecase.AddItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return buildCartResponse(cart), nil
}

func (uc *cartUsecase) RemoveItem(ctx context.Context, userID, itemID string) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.RemoveItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	cart, err := uc.CartRepository.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	cart.Items = filtered

	if err := uc.CartRepository.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return buildCartResponse(cart), nil
}

func (uc *cartUsecase) ClearCart(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.ClearCart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return uc.CartRepository.ClearCart(ctx, userID)
}

func buildCartResponse(cart *models.Cart) *responses.Cart {
	items := make([]responses.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, responses.CartItem{
			ID:              item.ID,
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
			Category:        item.Category,
		})
	}
	return &responses.Cart{
		Items:                items,
		TotalPrice:           cart.TotalPrice(),
		TotalDurationMinutes: cart.TotalDurationMinutes(),
	}
}
