// @title Swiss Tournament API
// @version 1.0
// @description Player registry, match results, standings and Swiss pairings.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/config"
	"github.com/Dosada05/swiss-tournament/db"
	_ "github.com/Dosada05/swiss-tournament/docs"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/repositories"
	api "github.com/Dosada05/swiss-tournament/routes"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/Dosada05/swiss-tournament/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("db_driver", cfg.DatabaseDriver), slog.Bool("export_enabled", cfg.ExportEnabled()))

	dialect, err := db.ParseDialect(cfg.DatabaseDriver)
	if err != nil {
		return err
	}
	dbConn, err := db.Connect(dialect, cfg.DatabaseURL, cfg.DBConnectTimeout, cfg.DBMaxOpenConns)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.ApplySchema(ctx, dbConn, dialect); err != nil {
		return err
	}
	logger.Info("schema applied")

	var uploader storage.FileUploader
	if cfg.ExportEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	}

	wsHub := brackets.NewHub(logger)
	hubDone := make(chan struct{})
	go func() {
		wsHub.Run(ctx)
		close(hubDone)
	}()
	logger.Info("WebSocket Hub started")

	playerRepo := repositories.NewPlayerRepository(dbConn, dialect)
	matchRepo := repositories.NewMatchRepository(dbConn, dialect)

	playerService := services.NewPlayerService(dbConn, playerRepo, matchRepo, wsHub, logger)
	matchService := services.NewMatchService(dbConn, matchRepo, wsHub, logger)
	tournamentService := services.NewTournamentService(dbConn, dialect, playerRepo, matchRepo, brackets.NewSwissGenerator(), logger)
	exportService := services.NewExportService(tournamentService, uploader, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{
			AllowedOrigins:    cfg.CORSAllowedOrigins,
			RateLimitRequests: cfg.RateLimitRequests,
			RateLimitWindow:   cfg.RateLimitWindow,
		},
		handlers.NewPlayerHandler(playerService),
		handlers.NewMatchHandler(matchService),
		handlers.NewTournamentHandler(tournamentService, exportService, dbConn),
		handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped")
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
	if err := server.Shutdown(shutdownCtx); err != nil {
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("failed to force close server", slog.Any("error", closeErr))
		}
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	<-hubDone
	logger.Info("server shutdown complete")
	return nil
}
