package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/vbonduro/taptime/internal/config"
	"github.com/vbonduro/taptime/internal/db"
	"github.com/vbonduro/taptime/internal/geo"
	claudegeo "github.com/vbonduro/taptime/internal/geo/claude"
	"github.com/vbonduro/taptime/internal/geo/nominatim"
	"github.com/vbonduro/taptime/internal/geo/offline"
	"github.com/vbonduro/taptime/internal/locations"
	"github.com/vbonduro/taptime/internal/logging"
	"github.com/vbonduro/taptime/internal/search"
	"github.com/vbonduro/taptime/internal/service"
	"github.com/vbonduro/taptime/internal/store"
	"github.com/vbonduro/taptime/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := openDatabase(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	resolver, err := newResolver(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize geocoder", "error", err)
		return
	}

	engine := search.NewEngine()
	locs, err := locations.NewStore(resolver, engine, logger)
	if err != nil {
		logger.Error("failed to initialize location store", "error", err)
		return
	}

	planner := service.NewPlannerService(locs, engine,
		store.NewMeetingStore(database),
		store.NewLocationListStore(database),
		logger,
		service.WithUserZone(cfg.UserTimeZone),
		service.WithAutosaveDelay(cfg.AutosaveDelay),
	)
	defer planner.Close()

	if err := planner.Restore(context.Background()); err != nil {
		logger.Warn("starting with an empty location list", "error", err)
	}

	server := web.NewServer(planner, web.Options{
		Addr:         cfg.ListenAddr,
		CORSOrigins:  cfg.CORSOrigins,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down server", "error", err)
		}
	}
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	if cfg.TestMode {
		return db.OpenForTesting()
	}
	return db.Open(cfg.DBPath)
}

func newResolver(cfg *config.Config, logger *slog.Logger) (geo.Resolver, error) {
	switch cfg.GeoBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			return nil, errors.New("CLAUDE_API_KEY is required when GEO_BACKEND=claude")
		}
		logger.Info("using Claude geocoder", "model", cfg.ClaudeModel)
		return claudegeo.NewResolver(cfg.ClaudeAPIKey, cfg.ClaudeModel), nil
	case "nominatim":
		logger.Info("using Nominatim geocoder", "url", cfg.NominatimURL)
		return nominatim.NewResolver(cfg.NominatimURL, cfg.NominatimUserAgent), nil
	default:
		logger.Info("using offline geocoder")
		return offline.NewResolver(), nil
	}
}
