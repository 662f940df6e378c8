package responses

type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
	Category        string `json:"category"`
	Active          bool   `json:"active"`
	ImageURL        string `json:"image_url,omitempty"`
}
