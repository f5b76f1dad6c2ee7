package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/time/rate"

	"jerseykraft/internal/api"
	"jerseykraft/internal/config"
	"jerseykraft/internal/repository"
	"jerseykraft/internal/service"
)

// connectDB connects to the configured document store. A missing or
// unreachable database is tolerated: the service starts degraded, every
// persistence endpoint fails with a storage error and /test reports it.
func connectDB(cfg *config.Config) (*mongo.Client, *mongo.Database) {
	if cfg.DatabaseURL == "" || cfg.DatabaseName == "" {
		log.Warn().Msg("DATABASE_URL/DATABASE_NAME not set, running without a database")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database, running degraded")
		return nil, nil
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Error().Err(err).Msgf("Database %s not reachable yet", cfg.DatabaseName)
	} else {
		log.Info().Msgf("✅ Connected to DB %s", cfg.DatabaseName)
	}
	return client, client.Database(cfg.DatabaseName)
}

func main() {
	cfg := config.Load()

	client, db := connectDB(cfg)
	if client != nil {
		defer client.Disconnect(context.Background())
	}

	var cache service.Cache
	if cfg.RedisAddr != "" {
		cache = service.NewRedisCache(redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		}))
	}

	var events service.EventWriter
	if cfg.KafkaBrokers != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBrokers, "jersey-orders")
		defer writer.Close()
		events = writer
	}

	store := repository.NewStore(db)
	catalogService := service.NewCatalogService(store, cache)
	teamService := service.NewTeamService(store)
	orderService := service.NewOrderService(store, cache, events)
	handler := api.NewHandler(cfg, catalogService, teamService, orderService, store)

	e := echo.New()
	e.Validator = api.NewValidator()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     50,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	api.RegisterRoutes(e, handler)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error shutting down server")
	}
	log.Info().Msg("Server stopped")
}
