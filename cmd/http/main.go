package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trimline-service/internal/app/config"
	"trimline-service/internal/app/delivery/http/middlewares"
	"trimline-service/internal/app/delivery/http/routers"
	"trimline-service/internal/app/drivers/database"
	"trimline-service/internal/app/drivers/logger"
	"trimline-service/internal/app/drivers/messaging"
	"trimline-service/internal/app/drivers/storage"
	"trimline-service/internal/app/services/core/auth"
	"trimline-service/internal/app/services/core/bookings"
	"trimline-service/internal/app/services/core/cart"
	"trimline-service/internal/app/services/core/catalog"
	"trimline-service/internal/app/services/core/session"
	"trimline-service/internal/app/services/core/users"
	"trimline-service/internal/app/services/shared/locker"
	"trimline-service/internal/app/services/shared/redis"
	storageservice "trimline-service/internal/app/services/shared/storage"
	"trimline-service/internal/app/services/shared/whatsapp"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(); err != nil {
		log.Printf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	storageService := storageservice.NewMinioStorageService(bootstrap.Minio, bootstrap.Logger, bootstrap.DriverConfig.Minio.BucketName)
	whatsAppService, err := whatsapp.NewWhatsAppService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.RabbitMQWhatsAppQueue)
	if err != nil {
		return err
	}

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.App.SessionExpTimeInHour)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Auth
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, sessionService, whatsAppService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Catalog
	serviceMongoRepository := catalog.NewServiceMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	catalogUsecase := catalog.NewCatalogUsecase(serviceMongoRepository, storageService, bootstrap.Logger)
	catalogController := catalog.NewCatalogController(catalogUsecase, bootstrap.Logger, bootstrap.InternalConfig.App.ServiceImageMaxUploadInMB)

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := catalogUsecase.SeedDefaultServices(seedCtx); err != nil {
		return err
	}

	// Cart
	cartRedisRepository := cart.NewCartRedisRepository(redisRepository, bootstrap.InternalConfig.App.CartExpTimeInHour)
	cartUsecase := cart.NewCartUsecase(cartRedisRepository, serviceMongoRepository, bootstrap.Logger)
	cartController := cart.NewCartController(cartUsecase, bootstrap.Logger)

	// Bookings
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository, cartRedisRepository, lockerService, bootstrap.Logger, bootstrap.InternalConfig.App.BookingLockTimeInSecond)
	bookingController := bookings.NewBookingController(bookingUsecase, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, catalogController, cartController, bookingController)
	return nil
}
