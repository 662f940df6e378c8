package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingRedisKey              = "redis_key"
	LoggingQueueNameKey          = "queue_name"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingBookingDateKey        = "booking_date"
	LoggingSlotLabelKey          = "slot_label"
	LoggingServiceIDKey          = "service_id"
	LoggingBookingIDKey          = "booking_id"
	LoggingUserIDKey             = "user_id"
	LoggingPhoneNumberKey        = "phone_number"
)
