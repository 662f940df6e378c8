package routers

import (
	"trimline-service/internal/app/delivery/http/middlewares"
	"trimline-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.Get("/availability/{date}", bookingController.GetAvailability)
	router.With(middlewares.Authenticate).Post("/", bookingController.CreateBooking)
	router.With(middlewares.Authenticate).Get("/", bookingController.ListUserBookings)
	router.With(middlewares.Authenticate).Delete("/{booking_id}", bookingController.CancelBooking)
}
