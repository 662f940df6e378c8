package responses

type CartItem struct {
	ID              string `json:"id"`
	ServiceID       string `json:"service_id"`
	ServiceName     string `json:"service_name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
	Category        string `json:"category"`
}

type Cart struct {
	Items                []CartItem `json:"items"`
	TotalPrice           int        `json:"total_price"`
	TotalDurationMinutes int        `json:"total_duration_minutes"`
}
