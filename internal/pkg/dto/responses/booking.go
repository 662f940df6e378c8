package responses

type Availability struct {
	Date         string   `json:"date"`
	Slots        []string `json:"slots"`
	BlockedSlots []string `json:"blocked_slots"`
}

type Booking struct {
	ID                   string     `json:"id"`
	Date                 string     `json:"date"`
	StartTime            string     `json:"start_time"`
	ContactName          string     `json:"contact_name"`
	ContactPhone         string     `json:"contact_phone"`
	Items                []CartItem `json:"items"`
	TotalPrice           int        `json:"total_price"`
	TotalDurationMinutes int        `json:"total_duration_minutes"`
	Status               string     `json:"status"`
	CalendarURL          string     `json:"calendar_url,omitempty"`
}
