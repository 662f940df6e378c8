package requests

type RequestOTP struct {
	PhoneNumber string `json:"phone_number" validate:"required,phone_number"`
}

type VerifyOTP struct {
	PhoneNumber string `json:"phone_number" validate:"required,phone_number"`
	OTP         string `json:"otp" validate:"required,len=6"`
}
