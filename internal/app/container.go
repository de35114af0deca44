package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/api"
	"github.com/abuelosolos/Fara/internal/auth"
	"github.com/abuelosolos/Fara/internal/availability"
	"github.com/abuelosolos/Fara/internal/catalog"
	"github.com/abuelosolos/Fara/internal/config"
	"github.com/abuelosolos/Fara/internal/override"
	"github.com/abuelosolos/Fara/internal/reservation"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router       *gin.Engine
	JWTManager   *auth.JWTManager
	Availability availability.Service

	redis *redis.Client
}

// Close releases what the container opened itself. The pool belongs to the caller.
func (c *Container) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

// NewAvailability wires the slot engine to the Postgres-backed sources.
// The CLI uses it without building the HTTP layer.
func NewAvailability(cfg *config.Config, pool *pgxpool.Pool) availability.Service {
	catalogService := catalog.NewService(catalog.NewPgxRepository(pool))
	overrideService := override.NewService(override.NewPgxRepository(pool))
	reservationService := reservation.NewService(reservation.NewPgxRepository(pool), catalogService, cfg.BusinessLocation)

	return availability.NewService(catalogService, overrideService, reservationService, availability.Options{
		Location: cfg.BusinessLocation,
	})
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)
	admin, err := auth.NewAdminAuthenticator(cfg.AdminPasswordHash, cfg.AdminPassword, passwordHasher, jwtManager)
	if err != nil {
		return nil, fmt.Errorf("failed to init admin auth: %w", err)
	}

	// Catalog Module
	catalogRepo := catalog.NewPgxRepository(pool)
	catalogService := catalog.NewService(catalogRepo)

	// Override Module
	overrideRepo := override.NewPgxRepository(pool)
	overrideService := override.NewService(overrideRepo)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(pool)
	reservationService := reservation.NewService(reservationRepo, catalogService, cfg.BusinessLocation)

	// Availability Module
	availabilityService := availability.NewService(catalogService, overrideService, reservationService, availability.Options{
		Location: cfg.BusinessLocation,
	})

	checks := map[string]api.Check{
		"postgres": pool.Ping,
	}

	// Rate limiting: shared Redis window when configured, per-process otherwise.
	var limiter api.Limiter
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiter = api.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "fara:rl")
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info("rate limiting enabled (redis)", zap.Int("per_minute", cfg.RateLimitPerMinute), zap.String("redis_addr", cfg.RedisAddr))
	} else {
		limiter = api.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute)
		log.Info("rate limiting enabled (in-memory)", zap.Int("per_minute", cfg.RateLimitPerMinute))
	}

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		Logger:              log,
		AvailabilityService: availabilityService,
		CatalogService:      catalogService,
		OverrideService:     overrideService,
		ReservationService:  reservationService,
		Admin:               admin,
		JWTManager:          jwtManager,
		Limiter:             limiter,
		LimitFailOpen:       true,
		ReadyChecks:         checks,
	})

	return &Container{
		Router:       router,
		JWTManager:   jwtManager,
		Availability: availabilityService,
		redis:        rdb,
	}, nil
}
