package requests

type AddCartItem struct {
	ServiceID string `json:"service_id" validate:"required"`
}
