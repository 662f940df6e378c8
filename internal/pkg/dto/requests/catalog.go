package requests

type CreateService struct {
	Name            string `json:"name" validate:"required,min=1,max=120"`
	Description     string `json:"description" validate:"max=500"`
	Price           int    `json:"price" validate:"required,min=1"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
	Category        string `json:"category" validate:"required,service_category"`
}

type UpdateService struct {
	Name            string `json:"name" validate:"omitempty,min=1,max=120"`
	Description     string `json:"description" validate:"max=500"`
	Price           int    `json:"price" validate:"omitempty,min=1"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=1"`
	Category        string `json:"category" validate:"omitempty,service_category"`
	Active          *bool  `json:"active"`
}
