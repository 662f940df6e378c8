package models

// CartItem is one service instance in a cart. The same service can appear
// more than once, so every item carries its own instance ID.
type CartItem struct {
	ID              string `json:"id"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
	Category        string `json:"category"`
}

type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

func (c *Cart) TotalDurationMinutes() int {
	total := 0
	for _, item := range c.Items {
		total += item.DurationMinutes
	}
	return total
}
