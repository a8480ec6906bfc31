package config

import (
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Name:                       utils.GetEnvString("APP_NAME", "phonelink-service"),
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 50),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			CORSAllowedOrigins:         utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			RabbitMQWhatsAppOutQueue:   utils.GetEnvString("APP_RABBITMQ_WHATSAPP_OUTBOUND_QUEUE", "whatsapp.outbound"),
			RabbitMQWhatsAppInQueue:    utils.GetEnvString("APP_RABBITMQ_WHATSAPP_INBOUND_QUEUE", "whatsapp.inbound"),
			MinioCleanupReportBucket:   utils.GetEnvString("APP_MINIO_CLEANUP_REPORT_BUCKET", "phonelink-audit"),
		},
		AccessGuard: AccessGuard{
			WebhookAPIKey: utils.GetEnvString("WEBHOOK_API_KEY", ""),
			WebhookSecret: utils.GetEnvString("WEBHOOK_SECRET", ""),
			AllowedIPs:    utils.GetEnvStringSlice("ALLOWED_IPS", nil),
			CleanupToken:  utils.GetEnvString("CLEANUP_TOKEN", ""),
		},
		Identity: Identity{
			JWTSecret:   utils.GetEnvString("IDENTITY_JWT_SECRET", ""),
			JWTAudience: utils.GetEnvString("IDENTITY_JWT_AUDIENCE", "authenticated"),
		},
		RateLimit: RateLimit{
			Backend:                  utils.GetEnvString("RATE_LIMIT_BACKEND", constvars.RateLimitBackendRedis),
			WebhookMax:               utils.GetEnvInt("WEBHOOK_RATE_LIMIT_MAX", 100),
			WebhookWindowSeconds:     utils.GetEnvInt("WEBHOOK_RATE_LIMIT_WINDOW_SECONDS", 60),
			PhoneStatusMax:           utils.GetEnvInt("PHONE_STATUS_RATE_LIMIT_MAX", 200),
			PhoneStatusWindowSeconds: utils.GetEnvInt("PHONE_STATUS_RATE_LIMIT_WINDOW_SECONDS", 60),
		},
		Cleanup: Cleanup{
			WorkerEnabled:  utils.GetEnvBool("CLEANUP_WORKER_ENABLED", true),
			WorkerCronSpec: utils.GetEnvString("CLEANUP_WORKER_CRON_SPEC", constvars.CleanupDefaultCronSpec),
		},
	}
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:            utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:            utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:        utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:        utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:          utils.GetEnvString("POSTGRES_DB_NAME", "phonelink"),
			SSLMode:         utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConns:    utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_IN_MINUTE", 30),
		},
		MongoDB: MongoDB{
			Host:              utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:              utils.GetEnvString("MONGODB_PORT", "27017"),
			Username:          utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:          utils.GetEnvString("MONGODB_PASSWORD", ""),
			DBName:            utils.GetEnvString("MONGODB_DB_NAME", "identity"),
			ProfileCollection: utils.GetEnvString("MONGODB_PROFILE_COLLECTION", "profiles"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}
