package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/delivery/http/controllers"
	"phonelink-service/internal/app/delivery/http/middlewares"
	"phonelink-service/internal/app/delivery/http/routers"
	"phonelink-service/internal/app/drivers/database"
	"phonelink-service/internal/app/drivers/logger"
	"phonelink-service/internal/app/drivers/messaging"
	"phonelink-service/internal/app/drivers/storage"
	"phonelink-service/internal/app/services/core/cleanup"
	"phonelink-service/internal/app/services/core/phonelinks"
	"phonelink-service/internal/app/services/core/profiles"
	"phonelink-service/internal/app/services/core/todos"
	"phonelink-service/internal/app/services/core/webhook"
	"phonelink-service/internal/app/services/shared/jwtmanager"
	"phonelink-service/internal/app/services/shared/locker"
	"phonelink-service/internal/app/services/shared/ratelimiter"
	redisRepo "phonelink-service/internal/app/services/shared/redis"
	reportStorage "phonelink-service/internal/app/services/shared/storage"
	"phonelink-service/internal/app/services/shared/whatsapp"
	"phonelink-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Postgres:       postgresDB,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("port", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	// Shared
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, zapLogger)
	tokenVerifier := jwtmanager.NewJWTManager(internalConfig, zapLogger)

	var rateLimiter contracts.RateLimiter
	switch internalConfig.RateLimit.Backend {
	case constvars.RateLimitBackendMemory:
		rateLimiter = ratelimiter.NewMemoryLimiter()
	default:
		rateLimiter = ratelimiter.NewRedisLimiter(redisRepository, zapLogger)
	}
	zapLogger.Info("Rate limiter configured",
		zap.String(constvars.LoggingRateLimitBackendNameKey, internalConfig.RateLimit.Backend),
	)

	whatsAppService, err := whatsapp.NewWhatsAppService(
		bootstrap.RabbitMQ,
		zapLogger,
		internalConfig.App.RabbitMQWhatsAppOutQueue,
		internalConfig.App.RabbitMQWhatsAppInQueue,
	)
	if err != nil {
		return err
	}
	cleanupReportStorage := reportStorage.NewMinioStorage(bootstrap.Minio, zapLogger)

	// Repositories
	phoneLinkRepository := phonelinks.NewPhoneLinkPostgresRepository(bootstrap.Postgres, zapLogger)
	todoRepository := todos.NewTodoPostgresRepository(bootstrap.Postgres, zapLogger)
	profileRepository := profiles.NewProfileMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DBName,
		bootstrap.DriverConfig.MongoDB.ProfileCollection,
		zapLogger,
	)

	// Usecases
	authCodeUsecase := phonelinks.NewAuthCodeUsecase(phoneLinkRepository, zapLogger)
	phoneLinkerUsecase := phonelinks.NewPhoneLinkerUsecase(phoneLinkRepository, whatsAppService, zapLogger)
	phoneLookupUsecase := phonelinks.NewPhoneLookupUsecase(phoneLinkRepository, profileRepository, zapLogger)
	webhookUsecase := webhook.NewWebhookUsecase(phoneLinkerUsecase, phoneLookupUsecase, whatsAppService, zapLogger)
	cleanupUsecase := cleanup.NewCleanupUsecase(
		phoneLinkRepository,
		cleanupReportStorage,
		internalConfig.App.MinioCleanupReportBucket,
		zapLogger,
	)
	todoUsecase := todos.NewTodoUsecase(todoRepository, zapLogger)

	// Worker
	if internalConfig.Cleanup.WorkerEnabled {
		worker := cleanup.NewWorker(zapLogger, internalConfig, lockService, cleanupUsecase)
		worker.Start(context.Background())
		bootstrap.WorkerStop = worker.Stop
	}

	// Delivery
	mw := middlewares.NewMiddlewares(zapLogger, internalConfig, rateLimiter, tokenVerifier)
	routers.SetupRoutes(bootstrap.Router, internalConfig, mw, &routers.Controllers{
		AuthCode:  controllers.NewAuthCodeController(zapLogger, authCodeUsecase),
		PhoneLink: controllers.NewPhoneLinkController(zapLogger, phoneLinkerUsecase, phoneLookupUsecase),
		Webhook:   controllers.NewWebhookController(zapLogger, webhookUsecase),
		Cleanup:   controllers.NewCleanupController(zapLogger, cleanupUsecase),
		Todo:      controllers.NewTodoController(zapLogger, todoUsecase),
		APIToken:  controllers.NewAPITokenController(zapLogger),
	})
	return nil
}
