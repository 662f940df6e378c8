package utils

import (
	"strings"
	"trimline-service/internal/pkg/dto/requests"
)

func SanitizeRequestOTPRequest(request *requests.RequestOTP) {
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
}

func SanitizeVerifyOTPRequest(request *requests.VerifyOTP) {
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.OTP = strings.TrimSpace(request.OTP)
}

func SanitizeCreateBookingRequest(request *requests.CreateBooking) {
	request.Date = strings.TrimSpace(request.Date)
	request.StartTime = strings.TrimSpace(request.StartTime)
	request.ContactName = strings.TrimSpace(request.ContactName)
	request.ContactPhone = strings.TrimSpace(request.ContactPhone)
}

func SanitizeCreateServiceRequest(request *requests.CreateService) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	request.Category = strings.ToLower(strings.TrimSpace(request.Category))
}

func SanitizeUpdateServiceRequest(request *requests.UpdateService) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	request.Category = strings.ToLower(strings.TrimSpace(request.Category))
}

func SanitizeAddCartItemRequest(request *requests.AddCartItem) {
	request.ServiceID = strings.TrimSpace(request.ServiceID)
}
