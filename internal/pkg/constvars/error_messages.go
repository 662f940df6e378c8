package constvars

// Client-facing messages. Keep them generic; dev messages carry the detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidTimeFormat             = "Selected time is not a valid slot time"
	ErrClientEmptyCart                     = "Your cart is empty, add a service before booking"
	ErrClientSlotNoLongerAvailable         = "That time slot was just taken, please pick another one"
	ErrClientSlotOutsideHours              = "Selected time is outside working hours"
	ErrClientBookingNotFound               = "Booking not found"
	ErrClientServiceNotFound               = "Service not found"
	ErrClientOTPInvalid                    = "The verification code is incorrect"
	ErrClientOTPExpired                    = "The verification code has expired, please request a new one"
	ErrClientOTPTooManyRequests            = "Too many verification requests, please wait before trying again"
	ErrClientInvalidImageFormat            = "Image format is not supported"
)

const (
	ErrDevValidationFailed          = "Input validation failed"
	ErrDevInvalidInput              = "Invalid input"
	ErrDevCannotParseJSON           = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded    = "Request processing exceeded the deadline"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to generate session token"
	ErrDevAuthSessionNotFound       = "Session not found in store"
	ErrDevAuthOTPInvalid            = "OTP does not match stored hash"
	ErrDevAuthOTPExpired            = "OTP not found or expired"
	ErrDevAuthOTPRateLimited        = "OTP request rate limit hit for phone number"
	ErrDevFailedToHashOTP           = "Failed to hash OTP"

	ErrDevSlotInvalidTimeFormat = "Slot label is not in h:mm AM/PM format"
	ErrDevSlotNotOnGrid         = "Slot label is not on the half-hour grid"
	ErrDevSlotTaken             = "Slot conflicts with a confirmed booking after fresh read"
	ErrDevSlotInvalidDuration   = "Candidate duration must be positive"

	ErrDevBookingEmptyCart       = "Booking submitted with no cart items"
	ErrDevBookingInvalidDate     = "Booking date is not in YYYY-MM-DD format"
	ErrDevBookingLockNotAcquired = "Could not acquire booking day lock"
	ErrDevCartServiceInactive    = "Service is inactive or does not exist"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID        = "String is not a valid ObjectID"

	ErrDevRedisFailedToSetData    = "Redis failed to set data"
	ErrDevRedisFailedToGetData    = "Redis failed to get data with key: %s"
	ErrDevRedisFailedToDeleteData = "Redis failed to delete data"
	ErrDevRedisFailedToUnlock     = "Redis failed to release lock"

	ErrDevRabbitMQPublishMessage = "RabbitMQ failed to publish message to queue: %s"

	ErrDevMinioUploadObject = "Minio failed to upload object"

	ErrDevImageValidationFailed = "Image validation failed"
)

var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"len":          "must be exactly %s characters",
	"oneof":        "must be one of: %s",
	"phone_number": "Phone number must be in international format, e.g. +15551234567",
	"booking_date": "Date must be in YYYY-MM-DD format",
	"slot_label":   "Time must be a half-hour mark such as 9:00 AM or 2:30 PM",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}
