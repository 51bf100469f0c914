package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcapi "autorental-backend/internal/api/grpc"
	httpapi "autorental-backend/internal/api/http"
	"autorental-backend/internal/config"
	"autorental-backend/internal/logger"
	"autorental-backend/internal/repository/postgres"
	"autorental-backend/internal/security"
	"autorental-backend/internal/service"
	"autorental-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	envPath := flag.String("env", ".env", "Path to optional .env file")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		log.Fatalf("Failed to load %s: %v", *envPath, err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AutoRental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http", cfg.GetServerAddress(), "grpc", cfg.GetGRPCAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Storage
	blobs, err := storage.New(ctx, cfg.StorageOptions())
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.Storage.Type, err)
	}
	logger.Info("Image storage ready", "type", cfg.Storage.Type)

	// Seed the admin account
	if err := service.NewBootstrapService(store.UserRepository).EnsureAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		log.Fatalf("Admin bootstrap failed: %v", err)
	}

	// Initialize Services
	svcs := httpapi.Services{
		Inventory: service.NewInventoryService(store.CarRepository, blobs),
		Rentals:   service.NewRentalService(store.RentalRepository, store.CarRepository),
		Stats:     service.NewStatsService(store.StatsRepository, store.UserRepository),
	}
	if local, ok := blobs.(*storage.LocalStore); ok {
		svcs.Images = local
	}

	router := httpapi.NewRouter(svcs, security.NewTokenManager(cfg.JWT.Secret), httpapi.RouterOptions{
		CarPageSize:    cfg.Catalog.CarPageSize,
		RentalPageSize: cfg.Catalog.RentalPageSize,
		MaxUploadBytes: cfg.Storage.MaxUploadMB << 20,
	})
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	// Set up gRPC health server
	var grpcServer interface{ GracefulStop() }
	if addr := cfg.GetGRPCAddress(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatalf("Failed to listen on %s: %v", addr, err)
		}
		s := grpcapi.NewServer(grpcapi.NewHealthServer(store.DB()))
		grpcServer = s
		go func() {
			if err := grpcapi.Serve(s, lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	logger.Info("Server stopped")
}
