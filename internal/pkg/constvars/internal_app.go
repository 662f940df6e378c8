package constvars

type ContextKey string

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TRMLN_SVC_"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
)

const (
	MongoCollectionUsers    = "users"
	MongoCollectionServices = "services"
	MongoCollectionBookings = "bookings"
)

const (
	RedisKeyPrefixSession     = "session:"
	RedisKeyPrefixOTP         = "otp:"
	RedisKeyPrefixCart        = "cart:"
	RedisKeyPrefixBookingLock = "booking_day_lock:"
)
