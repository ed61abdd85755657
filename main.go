// File: turfbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turfbook/config"
	"turfbook/database/repository"
	"turfbook/handlers"
	"turfbook/routes"
	"turfbook/services"
	"turfbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router. The MongoDB connection is opened lazily by the
	// first request that needs it, not here.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(utils.MetricsMiddleware())

	// repositories.
	bookingRepo := repository.NewMongoBookingRepo()
	reviewRepo := repository.NewMongoReviewRepo()
	purchaseRepo := repository.NewMongoPurchaseRepo()

	// services.
	bookingService := &services.DefaultBookingService{Repo: bookingRepo}
	reviewService := &services.DefaultReviewService{Repo: reviewRepo}
	purchaseService := &services.DefaultPurchaseService{Repo: purchaseRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Review:   handlers.NewReviewHandler(reviewService, logger),
		Purchase: handlers.NewPurchaseHandler(purchaseService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
