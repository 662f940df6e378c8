package requests

// WhatsAppMessage is the payload published to the OTP delivery queue.
type WhatsAppMessage struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}
