package bookings

import (
	"context"
	"errors"
	"testing"
	"time"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockBookingRepository struct {
	bookingsByDate map[string][]models.Booking
	userBookings   []models.Booking
	inserted       []*models.Booking
	insertErr      error
	deletedIDs     []string
}

func (m *mockBookingRepository) FindConfirmedBookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return m.bookingsByDate[date], nil
}

func (m *mockBookingRepository) FindBookingsByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	return m.userBookings, nil
}

func (m *mockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	m.inserted = append(m.inserted, booking)
	return "64b0c5f4a1b2c3d4e5f60718", nil
}

func (m *mockBookingRepository) DeleteBookingByIDAndUserID(ctx context.Context, bookingID, userID string) error {
	m.deletedIDs = append(m.deletedIDs, bookingID)
	return nil
}

type mockCartRepository struct {
	cart    *models.Cart
	cleared bool
}

func (m *mockCartRepository) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	if m.cart == nil {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	return m.cart, nil
}

func (m *mockCartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	m.cart = cart
	return nil
}

func (m *mockCartRepository) ClearCart(ctx context.Context, userID string) error {
	m.cleared = true
	m.cart = nil
	return nil
}

type mockLockerService struct {
	acquired bool
	lockErr  error
	unlocked bool
}

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if m.lockErr != nil {
		return false, "", m.lockErr
	}
	return m.acquired, "lock-token", nil
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	m.unlocked = true
	return nil
}

func newTestBookingUsecase(bookingRepo *mockBookingRepository, cartRepo *mockCartRepository, locker *mockLockerService) *bookingUsecase {
	return &bookingUsecase{
		BookingRepository:       bookingRepo,
		CartRepository:          cartRepo,
		LockerService:           locker,
		Log:                     zap.NewNop(),
		BookingLockTimeInSecond: 10,
	}
}

func twoServiceCart(userID string) *models.Cart {
	return &models.Cart{
		UserID: userID,
		Items: []models.CartItem{
			{ID: "svc-1-1", ServiceID: "svc-1", ServiceName: "Classic Haircut", Price: 50, DurationMinutes: 45, Category: "haircut"},
			{ID: "svc-3-1", ServiceID: "svc-3", ServiceName: "Beard Trim", Price: 30, DurationMinutes: 30, Category: "beard"},
		},
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateBooking{
		Date:         "2026-09-04",
		StartTime:    "9:00 AM",
		ContactName:  "Dana Reyes",
		ContactPhone: "+15551234567",
	}

	t.Run("persists snapshots and totals derived from the cart", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{bookingsByDate: map[string][]models.Booking{}}
		cartRepo := &mockCartRepository{cart: twoServiceCart("user-1")}
		locker := &mockLockerService{acquired: true}
		uc := newTestBookingUsecase(bookingRepo, cartRepo, locker)

		response, err := uc.CreateBooking(ctx, "user-1", request)

		assert.NoError(t, err)
		assert.Len(t, bookingRepo.inserted, 1)

		stored := bookingRepo.inserted[0]
		assert.Equal(t, 80, stored.TotalPrice)
		assert.Equal(t, 75, stored.TotalDurationMinutes)
		assert.Equal(t, 540, stored.StartMinutes)
		assert.Equal(t, "9:00 AM", stored.StartTime)
		assert.Equal(t, models.BookingStatusConfirmed, stored.Status)
		assert.Len(t, stored.Items, 2)
		assert.Equal(t, "Classic Haircut", stored.Items[0].ServiceName)

		assert.True(t, cartRepo.cleared)
		assert.True(t, locker.unlocked)
		assert.Equal(t, 80, response.TotalPrice)
		assert.Contains(t, response.CalendarURL, "calendar.google.com")
	})

	t.Run("rejects an empty cart before touching the day lock", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{bookingsByDate: map[string][]models.Booking{}}
		cartRepo := &mockCartRepository{}
		locker := &mockLockerService{acquired: true}
		uc := newTestBookingUsecase(bookingRepo, cartRepo, locker)

		_, err := uc.CreateBooking(ctx, "user-1", request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientEmptyCart, customErr.ClientMessage)
		assert.Empty(t, bookingRepo.inserted)
	})

	t.Run("fails with conflict when the fresh read finds an overlap", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{
			bookingsByDate: map[string][]models.Booking{
				"2026-09-04": {
					{Date: "2026-09-04", StartTime: "9:30 AM", StartMinutes: 570, TotalDurationMinutes: 60, Status: models.BookingStatusConfirmed},
				},
			},
		}
		cartRepo := &mockCartRepository{cart: twoServiceCart("user-1")}
		locker := &mockLockerService{acquired: true}
		uc := newTestBookingUsecase(bookingRepo, cartRepo, locker)

		// 9:00 AM + 75 minutes runs into the 9:30 AM booking.
		_, err := uc.CreateBooking(ctx, "user-1", request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Empty(t, bookingRepo.inserted)
		assert.False(t, cartRepo.cleared, "cart must survive a failed booking attempt")
		assert.True(t, locker.unlocked)
	})

	t.Run("fails with conflict when the day lock is held", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{bookingsByDate: map[string][]models.Booking{}}
		cartRepo := &mockCartRepository{cart: twoServiceCart("user-1")}
		locker := &mockLockerService{acquired: false}
		uc := newTestBookingUsecase(bookingRepo, cartRepo, locker)

		_, err := uc.CreateBooking(ctx, "user-1", request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Empty(t, bookingRepo.inserted)
		assert.False(t, cartRepo.cleared)
	})

	t.Run("rejects a malformed booking date", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{bookingsByDate: map[string][]models.Booking{}}
		cartRepo := &mockCartRepository{cart: twoServiceCart("user-1")}
		locker := &mockLockerService{acquired: true}
		uc := newTestBookingUsecase(bookingRepo, cartRepo, locker)

		badRequest := &requests.CreateBooking{Date: "2026-13-45", StartTime: "9:00 AM"}
		_, err := uc.CreateBooking(ctx, "user-1", badRequest)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("propagates insert failures", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{
			bookingsByDate: map[string][]models.Booking{},
			insertErr:      exceptions.ErrMongoDBInsertDocument(errors.New("connection reset")),
		}
		cartRepo := &mockCartRepository{cart: twoServiceCart("user-1")}
		locker := &mockLockerService{acquired: true}
		uc := newTestBookingUsecase(bookingRepo, cartRepo, locker)

		_, err := uc.CreateBooking(ctx, "user-1", request)

		assert.Error(t, err)
		assert.False(t, cartRepo.cleared)
	})
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the grid with blocked slots in grid order", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{
			bookingsByDate: map[string][]models.Booking{
				"2026-09-04": {
					{Date: "2026-09-04", StartTime: "2:00 PM", StartMinutes: 840, TotalDurationMinutes: 60, Status: models.BookingStatusConfirmed},
				},
			},
		}
		uc := newTestBookingUsecase(bookingRepo, &mockCartRepository{}, &mockLockerService{})

		availability, err := uc.GetAvailability(ctx, "2026-09-04", 30)

		assert.NoError(t, err)
		assert.Len(t, availability.Slots, 19)
		assert.Equal(t, []string{"2:00 PM", "2:30 PM"}, availability.BlockedSlots)
	})

	t.Run("no bookings means nothing blocked", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{bookingsByDate: map[string][]models.Booking{}}
		uc := newTestBookingUsecase(bookingRepo, &mockCartRepository{}, &mockLockerService{})

		availability, err := uc.GetAvailability(ctx, "2026-09-04", 45)

		assert.NoError(t, err)
		assert.Empty(t, availability.BlockedSlots)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{bookingsByDate: map[string][]models.Booking{}}
		uc := newTestBookingUsecase(bookingRepo, &mockCartRepository{}, &mockLockerService{})

		_, err := uc.GetAvailability(ctx, "09/04/2026", 30)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to the repository and succeeds for unknown ids", func(t *testing.T) {
		bookingRepo := &mockBookingRepository{bookingsByDate: map[string][]models.Booking{}}
		uc := newTestBookingUsecase(bookingRepo, &mockCartRepository{}, &mockLockerService{})

		err := uc.CancelBooking(ctx, "user-1", "64b0c5f4a1b2c3d4e5f60718")
		assert.NoError(t, err)

		err = uc.CancelBooking(ctx, "user-1", "not-an-object-id")
		assert.NoError(t, err)

		assert.Len(t, bookingRepo.deletedIDs, 2)
	})
}

func TestBuildCalendarURL(t *testing.T) {
	booking := &models.Booking{
		Date:                 "2026-09-04",
		StartMinutes:         840,
		TotalDurationMinutes: 75,
		Items: []models.BookingItem{
			{ServiceName: "Classic Haircut"},
			{ServiceName: "Beard Trim"},
		},
	}

	calendarURL := buildCalendarURL(booking)

	assert.Contains(t, calendarURL, "action=TEMPLATE")
	assert.Contains(t, calendarURL, "20260904T140000%2F20260904T151500")
	assert.Contains(t, calendarURL, "Classic+Haircut")
}
