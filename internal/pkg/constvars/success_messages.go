package constvars

const (
	OTPSentSuccessMessage           = "Verification code sent"
	LoginSuccessMessage             = "Successfully logged in"
	LogoutSuccessMessage            = "Successfully logged out"
	ServicesFetchSuccessMessage     = "Successfully fetched services"
	ServiceCreateSuccessMessage     = "Successfully created service"
	ServiceUpdateSuccessMessage     = "Successfully updated service"
	ServiceImageSuccessMessage      = "Successfully uploaded service image"
	CartFetchSuccessMessage         = "Successfully fetched cart"
	CartAddSuccessMessage           = "Successfully added service to cart"
	CartRemoveSuccessMessage        = "Successfully removed item from cart"
	CartClearSuccessMessage         = "Successfully cleared cart"
	AvailabilityFetchSuccessMessage = "Successfully fetched availability"
	BookingCreateSuccessMessage     = "Successfully created booking"
	BookingsFetchSuccessMessage     = "Successfully fetched bookings"
	BookingCancelSuccessMessage     = "Successfully cancelled booking"
)
