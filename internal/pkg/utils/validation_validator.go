package utils

import (
	"regexp"
	"strings"
	"trimline-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("booking_date", validateBookingDate)
	validate.RegisterValidation("slot_label", validateSlotLabel)
	validate.RegisterValidation("service_category", validateServiceCategory)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexPhoneNumber)
	return re.MatchString(phoneNumber)
}

func validateBookingDate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexBookingDate)
	return re.MatchString(date)
}

// validateSlotLabel only checks the shape; grid membership is enforced by the
// slot engine so the rejection carries the proper booking error.
func validateSlotLabel(fl validator.FieldLevel) bool {
	label := fl.Field().String()
	re := regexp.MustCompile(`^(1[0-2]|[1-9]):[0-5][0-9] (AM|PM)$`)
	return re.MatchString(label)
}

func validateServiceCategory(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	return value == "haircut" || value == "beard" || value == "combo"
}
