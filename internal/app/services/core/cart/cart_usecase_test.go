package cart

import (
	"context"
	"testing"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockServiceRepository struct {
	services map[string]*models.Service
}

func (m *mockServiceRepository) FindActiveServices(ctx context.Context) ([]models.Service, error) {
	var active []models.Service
	for _, service := range m.services {
		if service.Active {
			active = append(active, *service)
		}
	}
	return active, nil
}

func (m *mockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	return m.services[serviceID], nil
}

func (m *mockServiceRepository) CreateService(ctx context.Context, service *models.Service) (string, error) {
	id := primitive.NewObjectID()
	service.ID = id
	m.services[id.Hex()] = service
	return id.Hex(), nil
}

func (m *mockServiceRepository) UpdateService(ctx context.Context, serviceID string, service *models.Service) error {
	m.services[serviceID] = service
	return nil
}

func (m *mockServiceRepository) CountServices(ctx context.Context) (int64, error) {
	return int64(len(m.services)), nil
}

type mockCartRepository struct {
	carts map[string]*models.Cart
}

func (m *mockCartRepository) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	if cart, ok := m.carts[userID]; ok {
		return cart, nil
	}
	return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
}

func (m *mockCartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	m.carts[cart.UserID] = cart
	return nil
}

func (m *mockCartRepository) ClearCart(ctx context.Context, userID string) error {
	delete(m.carts, userID)
	return nil
}

func newTestCartUsecase(serviceRepo *mockServiceRepository, cartRepo *mockCartRepository) *cartUsecase {
	return &cartUsecase{
		CartRepository:    cartRepo,
		ServiceRepository: serviceRepo,
		Log:               zap.NewNop(),
	}
}

func seedService(name string, price, duration int, category string, active bool) (*mockServiceRepository, string) {
	id := primitive.NewObjectID()
	repo := &mockServiceRepository{services: map[string]*models.Service{
		id.Hex(): {
			ID:              id,
			Name:            name,
			Price:           price,
			DurationMinutes: duration,
			Category:        category,
			Active:          active,
		},
	}}
	return repo, id.Hex()
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the service and sums totals", func(t *testing.T) {
		serviceRepo, haircutID := seedService("Classic Haircut", 50, 45, "haircut", true)
		cartRepo := &mockCartRepository{carts: map[string]*models.Cart{}}
		uc := newTestCartUsecase(serviceRepo, cartRepo)

		cart, err := uc.AddItem(ctx, "user-1", &requests.AddCartItem{ServiceID: haircutID})
		assert.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, "Classic Haircut", cart.Items[0].ServiceName)
		assert.Equal(t, 50, cart.TotalPrice)
		assert.Equal(t, 45, cart.TotalDurationMinutes)

		// The same service can be added twice; each item keeps its own id.
		cart, err = uc.AddItem(ctx, "user-1", &requests.AddCartItem{ServiceID: haircutID})
		assert.NoError(t, err)
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, 100, cart.TotalPrice)
		assert.Equal(t, 90, cart.TotalDurationMinutes)
	})

	t.Run("rejects an inactive service", func(t *testing.T) {
		serviceRepo, retiredID := seedService("Retired Cut", 40, 30, "haircut", false)
		cartRepo := &mockCartRepository{carts: map[string]*models.Cart{}}
		uc := newTestCartUsecase(serviceRepo, cartRepo)

		_, err := uc.AddItem(ctx, "user-1", &requests.AddCartItem{ServiceID: retiredID})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("rejects an unknown service", func(t *testing.T) {
		serviceRepo := &mockServiceRepository{services: map[string]*models.Service{}}
		cartRepo := &mockCartRepository{carts: map[string]*models.Cart{}}
		uc := newTestCartUsecase(serviceRepo, cartRepo)

		_, err := uc.AddItem(ctx, "user-1", &requests.AddCartItem{ServiceID: primitive.NewObjectID().Hex()})
		assert.Error(t, err)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	serviceRepo, haircutID := seedService("Classic Haircut", 50, 45, "haircut", true)
	cartRepo := &mockCartRepository{carts: map[string]*models.Cart{}}
	uc := newTestCartUsecase(serviceRepo, cartRepo)

	first, err := uc.AddItem(ctx, "user-1", &requests.AddCartItem{ServiceID: haircutID})
	assert.NoError(t, err)

	cart, err := uc.RemoveItem(ctx, "user-1", first.Items[0].ID)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalPrice)

	// Removing an id that is not in the cart leaves it unchanged.
	cart, err = uc.RemoveItem(ctx, "user-1", "missing-item")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	serviceRepo, haircutID := seedService("Classic Haircut", 50, 45, "haircut", true)
	cartRepo := &mockCartRepository{carts: map[string]*models.Cart{}}
	uc := newTestCartUsecase(serviceRepo, cartRepo)

	_, err := uc.AddItem(ctx, "user-1", &requests.AddCartItem{ServiceID: haircutID})
	assert.NoError(t, err)

	assert.NoError(t, uc.ClearCart(ctx, "user-1"))

	cart, err := uc.GetCart(ctx, "user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}
