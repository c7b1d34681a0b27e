// File: clearslot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clearslot/config"
	"clearslot/database"
	credentialsRepo "clearslot/database/repository/credentials"
	personRepoPkg "clearslot/database/repository/person"
	"clearslot/handlers"
	"clearslot/middleware"
	"clearslot/routes"
	"clearslot/services/availability"
	"clearslot/services/calendar"
	"clearslot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCredentialsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	personRepo := personRepoPkg.NewMongoPersonRepo()
	credsRepo := credentialsRepo.NewRedisCredentialsRepo(utils.GetCredentialsCacheClient())

	// upstream provider and fetcher.
	busyProvider := calendar.NewGoogleBusyProvider(
		config.AppConfig.GoogleClientID,
		config.AppConfig.GoogleClientSecret,
		time.Duration(config.AppConfig.FreeBusyTimeoutSec)*time.Second,
		time.Duration(config.AppConfig.ExchangeTimeoutSec)*time.Second,
	)
	fetcher := &availability.Fetcher{
		Provider:    busyProvider,
		Credentials: credsRepo,
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Persons:  personRepo,
		Fetcher:  fetcher,
		ScanDays: config.AppConfig.DefaultScanDays,
		Fanout:   config.AppConfig.BatchFanout,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	personHandler := handlers.NewPersonHandler(personRepo)
	credentialsHandler := handlers.NewCredentialsHandler(credsRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability endpoints.
		ComputeAvailabilityHandler: availabilityHandler.ComputeAvailabilityHandler,
		ComputeBatchHandler:        availabilityHandler.ComputeBatchHandler,

		// Person endpoints.
		GetPersonByIDHandler:     personHandler.GetPersonByIDHandler,
		UpsertPersonHandler:      personHandler.UpsertPersonHandler,
		UpdatePreferencesHandler: personHandler.UpdatePreferencesHandler,
		DeletePersonHandler:      personHandler.DeletePersonHandler,

		// Credential endpoints.
		StoreCredentialsHandler:  credentialsHandler.StoreCredentialsHandler,
		DeleteCredentialsHandler: credentialsHandler.DeleteCredentialsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health snapshots for the /health endpoint.
	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, 60*time.Second,
		map[string]*redis.Client{"credentials": utils.GetCredentialsCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
