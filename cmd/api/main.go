package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cottage-store/internal/config"
	"cottage-store/internal/database"
	"cottage-store/internal/email"
	"cottage-store/internal/handler"
	"cottage-store/internal/repository"
	"cottage-store/internal/router"
	"cottage-store/internal/service"
	"cottage-store/internal/shop"
	"cottage-store/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting cottage-store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)

	// Load the catalog snapshot the storefront serves from
	catalogStore := shop.NewCatalogStore(productRepo, categoryRepo, logger)
	if err := catalogStore.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Initialize blob store for image uploads; the admin panel degrades to
	// URL-only images when storage is disabled
	var blobStore storage.BlobStore
	if cfg.Storage.Enabled {
		blobStore, err = storage.NewS3Store(ctx, cfg.Storage.Bucket, cfg.Storage.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise blob store, image uploads disabled")
			blobStore = nil
		}
	} else {
		logger.Info().Msg("image upload storage disabled")
	}

	// Initialize email sender and order service
	sender := email.NewResendSender(cfg.Email.APIKey, logger)
	orderService := service.NewOrderService(
		orderRepo, sender,
		cfg.Email.StoreName, cfg.Email.FromAddress, cfg.Email.AdminAddress,
		logger,
	)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:  handler.NewProductHandler(catalogStore, logger),
		Category: handler.NewCategoryHandler(catalogStore, logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Settings: handler.NewSettingsHandler(settingsRepo, logger),
		Upload:   handler.NewUploadHandler(blobStore, logger),
		POS:      handler.NewPOSHandler(catalogStore, orderRepo, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
