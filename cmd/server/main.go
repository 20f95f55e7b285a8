package main

import (
	"context"
	"database/sql"
	"disposal-locator-service/internal/adapters/cache"
	"disposal-locator-service/internal/adapters/geocoding"
	"disposal-locator-service/internal/adapters/repositories"
	"disposal-locator-service/internal/api"
	"disposal-locator-service/internal/config"
	"disposal-locator-service/internal/domain"
	"disposal-locator-service/internal/platform/db"
	"disposal-locator-service/internal/platform/logger"
	"disposal-locator-service/internal/ports"
	"disposal-locator-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis, Gemini/ORS) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()
	zap.ReplaceGlobals(appLogger)

	if !strings.EqualFold(cfg.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	repo, geocodeCache, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		appLogger.Fatal("open storage", zap.Error(err))
	}
	defer closeStorage()

	// The catalog is loaded once and treated as constant for the process lifetime.
	locs, err := repo.ListLocations(ctx)
	if err != nil {
		appLogger.Fatal("load catalog", zap.Error(err))
	}
	catalog, err := domain.NewCatalog(locs)
	if err != nil {
		appLogger.Fatal("build catalog", zap.Error(err))
	}
	appLogger.Info("catalog loaded", zap.Int("locations", catalog.Len()))

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			appLogger.Fatal("connect redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		geocodeCache = cache.NewRedisGeocodeCache(client, cfg.GeocodeCacheTTL)
		appLogger.Info("using redis geocode cache", zap.String("addr", cfg.RedisAddr))
	}

	geocoder := geocoding.NewCachingGeocoder(newGeocoder(ctx, cfg, appLogger), geocodeCache)

	router := api.NewRouter(services.NewLocator(catalog), geocoder, api.RouterConfig{
		DefaultRadiusKm: cfg.DefaultRadiusKm,
		TopN:            cfg.TopN,
		SuggestionLimit: cfg.SuggestionLimit,
	}, appLogger)

	// Timeouts leave room for one external geocoding call per request.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server forced to shutdown", zap.Error(err))
	}
}

// openStorage returns the catalog repository and geocode cache for the
// configured backend: Postgres when DATABASE_URL is set, SQLite otherwise.
func openStorage(ctx context.Context, cfg config.Config) (ports.LocationRepository, ports.GeocodeCache, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := db.OpenPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		sqlDB, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			pool.Close()
			return nil, nil, nil, err
		}

		closeFn := func() {
			sqlDB.Close()
			pool.Close()
		}
		return repositories.NewPostgresLocationRepository(pool), cache.NewSQLGeocodeCache(sqlDB), closeFn, nil
	}

	sqliteDB, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}

	// Initialize schema and seed the catalog on startup for local runs.
	if err := initAndSeed(sqliteDB, cfg.SeedPath); err != nil {
		sqliteDB.Close()
		return nil, nil, nil, err
	}

	closeFn := func() { sqliteDB.Close() }
	return repositories.NewSqliteLocationRepository(sqliteDB), cache.NewSqliteGeocodeCache(sqliteDB), closeFn, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// newGeocoder picks the configured geocoding backend. Missing credentials
// are not fatal: address search then always reports "not found".
func newGeocoder(ctx context.Context, cfg config.Config, logger *zap.Logger) ports.Geocoder {
	switch cfg.Geocoder {
	case "gemini":
		g, err := geocoding.NewGeminiGeocoder(ctx, cfg.GeminiAPIKey, geocoding.GeminiOptions{
			Model:  cfg.GeminiModel,
			Region: cfg.GeocodeRegion,
		})
		if err != nil {
			logger.Warn("gemini geocoder unavailable; address search disabled", zap.Error(err))
			return geocoding.Disabled{}
		}
		return g
	case "ors":
		g, err := geocoding.NewORSGeocoder(cfg.ORSAPIKey, cfg.ORSCountry)
		if err != nil {
			logger.Warn("ors geocoder unavailable; address search disabled", zap.Error(err))
			return geocoding.Disabled{}
		}
		return g
	default:
		logger.Info("geocoding disabled")
		return geocoding.Disabled{}
	}
}
