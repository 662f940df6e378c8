package cart

import (
	"context"
	"time"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type cartRedisRepository struct {
	RedisRepository   contracts.RedisRepository
	CartExpTimeInHour int
}

func NewCartRedisRepository(redisRepository contracts.RedisRepository, cartExpTimeInHour int) contracts.CartRepository {
	return &cartRedisRepository{
		RedisRepository:   redisRepository,
		CartExpTimeInHour: cartExpTimeInHour,
	}
}

func (r *cartRedisRepository) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := r.RedisRepository.Get(ctx, constvars.RedisKeyPrefixCart+userID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}

	cart := new(models.Cart)
	if err := json.Unmarshal([]byte(data), cart); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (r *cartRedisRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	return r.RedisRepository.Set(
		ctx,
		constvars.RedisKeyPrefixCart+cart.UserID,
		cart,
		time.Duration(r.CartExpTimeInHour)*time.Hour,
	)
}

func (r *cartRedisRepository) ClearCart(ctx context.Context, userID string) error {
	return r.RedisRepository.Delete(ctx, constvars.RedisKeyPrefixCart+userID)
}
