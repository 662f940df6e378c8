package constvars

const (
	RegexPhoneNumber = `^\+[1-9]\d{9,14}$`
	RegexBookingDate = `^\d{4}-\d{2}-\d{2}$`
)
