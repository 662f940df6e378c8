package responses

type Login struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	NewUser     bool   `json:"new_user"`
}
