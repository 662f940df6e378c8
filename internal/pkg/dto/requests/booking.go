package requests

type CreateBooking struct {
	Date         string `json:"date" validate:"required,booking_date"`
	StartTime    string `json:"start_time" validate:"required"`
	ContactName  string `json:"contact_name" validate:"required,min=1,max=120"`
	ContactPhone string `json:"contact_phone" validate:"required,phone_number"`
}
