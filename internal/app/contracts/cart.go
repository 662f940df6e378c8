package contracts

import (
	"context"
	"trimline-service/internal/app/models"
)

type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	ClearCart(ctx context.Context, userID string) error
}
