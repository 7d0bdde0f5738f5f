package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/sources"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting barcode lookup api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"primary_source", cfg.Sources.PrimaryURL,
		"secondary_source", cfg.Sources.SecondaryURL,
		"prefer_domain_source", cfg.Sources.PreferDomainSource,
	)

	// Upstream sources, each bounded by the per-query timeout
	sourceTimeout := time.Duration(cfg.Sources.Timeout) * time.Second
	primary := sources.NewUPCItemDB(sources.Options{
		BaseURL:   cfg.Sources.PrimaryURL,
		UserAgent: cfg.Sources.UserAgent,
		Timeout:   sourceTimeout,
	})
	secondary := sources.NewOpenBeautyFacts(sources.Options{
		BaseURL:   cfg.Sources.SecondaryURL,
		UserAgent: cfg.Sources.UserAgent,
		Timeout:   sourceTimeout,
	})

	resolver := service.NewResolver(primary, secondary,
		service.WithLogger(log),
		service.WithPreferDomainSource(cfg.Sources.PreferDomainSource),
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, primary.Name(), secondary.Name())
	productHandler := handlers.NewProductHandler(resolver, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	// Two sequential source queries must fit inside the request deadline
	r.Use(chimiddleware.Timeout(time.Duration(cfg.RequestTimeoutSeconds()) * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/product/{barcode}", productHandler.LookupProduct)
		r.Get("/product/{barcode}/details", productHandler.ProductDetails)
		r.Get("/details", productHandler.RenderDetails)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
