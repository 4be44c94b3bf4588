// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"codelookup/internal/codes/repository"
	codesservice "codelookup/internal/codes/service"
	codeshttp "codelookup/internal/codes/transport/http"
	"codelookup/internal/config"
	"codelookup/internal/metrics"
	"codelookup/internal/server"
	"codelookup/internal/web"
	"codelookup/pkg/db"
	"codelookup/pkg/hash"
	"codelookup/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Config load failed")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("driver", cfg.DBDriver).Msg("Code lookup starting")

	database, err := db.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	defer database.Close()

	if err := db.CreateSchema(database); err != nil {
		log.Fatal().Err(err).Msg("Schema creation failed")
	}
	log.Info().Msg("Database ready")

	verifier, err := hash.NewKeyVerifier(cfg.AdminKey, cfg.AdminKeyHash)
	if err != nil {
		log.Fatal().Err(err).Msg("Admin key is invalid")
	}

	// --- слои ---
	codeRepo := repository.NewSQLCodeRepository(database)
	validationService := codesservice.NewValidationService(codeRepo)
	adminService := codesservice.NewAdminService(codeRepo, verifier)
	codesHandler := codeshttp.NewHandler(validationService, adminService)

	if cfg.SeedExamples {
		n, err := codesservice.Seed(context.Background(), codeRepo, codesservice.ExampleRecords)
		if err != nil {
			log.Fatal().Err(err).Msg("Seeding example codes failed")
		}
		if n > 0 {
			log.Info().Int("count", n).Msg("Example codes seeded")
		}
	}

	pages, err := web.NewPages()
	if err != nil {
		log.Fatal().Err(err).Msg("Templates failed to load")
	}

	metrics.InitMetrics()

	router := server.NewRouter(server.Deps{
		Config: cfg,
		Logger: log,
		Codes:  codesHandler,
		Pages:  pages,
		DB:     codeRepo,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown на сигналы ОС
	done := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Info().Msg("Shutdown signal received, starting graceful shutdown")
		shutdownServer(srv, cfg.ShutdownTimeout, log)
		close(done)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("Server running")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server failed")
	}
	<-done
}

func shutdownServer(srv *http.Server, timeout time.Duration, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
