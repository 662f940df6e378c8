package cart

import (
	"context"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/dto/responses"
)

type CartUsecase interface {
	GetCart(ctx context.Context, userID string) (*responses.Cart, error)
	AddItem(ctx context.Context, userID string, request *requests.AddCartItem) (*responses.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*responses.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}
