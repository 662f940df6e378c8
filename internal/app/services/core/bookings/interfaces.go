package bookings

import (
	"context"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	GetAvailability(ctx context.Context, date string, candidateDurationMinutes int) (*responses.Availability, error)
	CreateBooking(ctx context.Context, userID string, request *requests.CreateBooking) (*responses.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]responses.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID string) error
}
