package bookings

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"trimline-service/internal/app/models"
	"trimline-service/internal/app/services/core/slot"
	"trimline-service/internal/pkg/dto/responses"
	"trimline-service/internal/pkg/exceptions"
)

const bookingDateLayout = "2006-01-02"

// parseBookingDate rejects both malformed and impossible dates such as
// "2025-13-45"; the shape regex alone is not enough.
func parseBookingDate(date string) (time.Time, error) {
	day, err := time.Parse(bookingDateLayout, date)
	if err != nil {
		return time.Time{}, exceptions.ErrBookingInvalidDate(err)
	}
	return day, nil
}

// bookedIntervals maps persisted bookings to the engine's interval inputs.
func bookedIntervals(dayBookings []models.Booking) []slot.BookedInterval {
	intervals := make([]slot.BookedInterval, 0, len(dayBookings))
	for _, booking := range dayBookings {
		intervals = append(intervals, slot.BookedInterval{
			StartMinutes:    booking.StartMinutes,
			DurationMinutes: booking.TotalDurationMinutes,
		})
	}
	return intervals
}

// buildCalendarURL renders a Google Calendar event link for a booking.
// Times are shop-local wall clock, so no timezone designator is attached.
func buildCalendarURL(booking *models.Booking) string {
	day, err := time.Parse(bookingDateLayout, booking.Date)
	if err != nil {
		return ""
	}

	start := day.Add(time.Duration(booking.StartMinutes) * time.Minute)
	end := start.Add(time.Duration(booking.TotalDurationMinutes) * time.Minute)

	names := make([]string, 0, len(booking.Items))
	for _, item := range booking.Items {
		names = append(names, item.ServiceName)
	}

	values := url.Values{}
	values.Set("action", "TEMPLATE")
	values.Set("text", "Trimline Barbershop Appointment")
	values.Set("dates", fmt.Sprintf("%s/%s", start.Format("20060102T150405"), end.Format("20060102T150405")))
	values.Set("details", strings.Join(names, ", "))
	return "https://calendar.google.com/calendar/render?" + values.Encode()
}

func buildBookingResponse(booking *models.Booking) *responses.Booking {
	items := make([]responses.CartItem, 0, len(booking.Items))
	for _, item := range booking.Items {
		items = append(items, responses.CartItem{
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
			Category:        item.Category,
		})
	}
	return &responses.Booking{
		ID:                   booking.ID.Hex(),
		Date:                 booking.Date,
		StartTime:            booking.StartTime,
		ContactName:          booking.ContactName,
		ContactPhone:         booking.ContactPhone,
		Items:                items,
		TotalPrice:           booking.TotalPrice,
		TotalDurationMinutes: booking.TotalDurationMinutes,
		Status:               booking.Status,
		CalendarURL:          buildCalendarURL(booking),
	}
}
