// Package main initializes and starts the portal backend, setting up
// configuration, logging, the catalog repository and service, HTTP
// handlers, and metrics.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/angussewell/lead-magnet-library/internal/config"
	"github.com/angussewell/lead-magnet-library/internal/logger"
	"github.com/angussewell/lead-magnet-library/internal/repository"
	"github.com/angussewell/lead-magnet-library/internal/server/handler/http"
	"github.com/angussewell/lead-magnet-library/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize the file-backed catalog repository and service.
	catalogRepo := repository.NewFileCatalog(options.CatalogFile)
	catalogService := service.NewCatalogService(catalogRepo)

	// Create the HTTP handler for the products endpoint.
	productsHandler := &http.ProductsHandler{CatalogService: catalogService, Log: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(productsHandler, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("addr", addr),
		zap.String("catalog", options.CatalogFile),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
