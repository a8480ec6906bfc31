package config

type (
	InternalConfig struct {
		App         App
		AccessGuard AccessGuard
		Identity    Identity
		RateLimit   RateLimit
		Cleanup     Cleanup
	}

	App struct {
		Name                       string
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		MaxRequests                int
		MaxTimeRequestsPerSeconds  int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		CORSAllowedOrigins         []string
		RabbitMQWhatsAppOutQueue   string
		RabbitMQWhatsAppInQueue    string
		MinioCleanupReportBucket   string
	}

	// AccessGuard holds the shared secrets checked in front of the public endpoints.
	AccessGuard struct {
		WebhookAPIKey string
		WebhookSecret string
		AllowedIPs    []string
		CleanupToken  string
	}

	Identity struct {
		JWTSecret   string
		JWTAudience string
	}

	RateLimit struct {
		Backend                  string
		WebhookMax               int
		WebhookWindowSeconds     int
		PhoneStatusMax           int
		PhoneStatusWindowSeconds int
	}

	Cleanup struct {
		WorkerEnabled  bool
		WorkerCronSpec string
	}
)

type (
	DriverConfig struct {
		Postgres Postgres
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	Postgres struct {
		Host            string
		Port            string
		Username        string
		Password        string
		DBName          string
		SSLMode         string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime int
	}

	MongoDB struct {
		Host              string
		Port              string
		Username          string
		Password          string
		DBName            string
		ProfileCollection string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Enabled  bool
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Enabled  bool
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
)
