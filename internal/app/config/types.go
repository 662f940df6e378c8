package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		EndpointPrefix            string
		ShutdownTimeout           int
		MaxRequests               int
		RabbitMQWhatsAppQueue     string
		OTPLength                 int
		OTPExpTimeInMinute        int
		OTPMaxRequestsPerMinute   int
		SessionExpTimeInHour      int
		CartExpTimeInHour         int
		BookingLockTimeInSecond   int
		ServiceImageMaxUploadInMB int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
