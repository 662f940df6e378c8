package contracts

import (
	"context"
	"trimline-service/internal/app/models"
)

type BookingRepository interface {
	FindConfirmedBookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	DeleteBookingByIDAndUserID(ctx context.Context, bookingID, userID string) error
}
