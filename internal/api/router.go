package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/auth"
	authHttp "github.com/abuelosolos/Fara/internal/auth/http"
	"github.com/abuelosolos/Fara/internal/availability"
	availabilityHttp "github.com/abuelosolos/Fara/internal/availability/http"
	"github.com/abuelosolos/Fara/internal/catalog"
	catalogHttp "github.com/abuelosolos/Fara/internal/catalog/http"
	"github.com/abuelosolos/Fara/internal/override"
	overrideHttp "github.com/abuelosolos/Fara/internal/override/http"
	"github.com/abuelosolos/Fara/internal/reservation"
	reservationHttp "github.com/abuelosolos/Fara/internal/reservation/http"
)

// Config holds everything NewRouter assembles.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	Logger       *zap.Logger

	AvailabilityService availability.Service
	CatalogService      catalog.Service
	OverrideService     override.Service
	ReservationService  reservation.Service
	Admin               *auth.AdminAuthenticator
	JWTManager          *auth.JWTManager

	Limiter       Limiter
	LimitFailOpen bool
	ReadyChecks   map[string]Check
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, logging, auth, rate limits) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Limiter == nil {
		cfg.Limiter = NewMemoryLimiter(0, 0)
	}

	r := gin.New()

	// Global Middleware:
	// - RequestLogger: request id plus a zap access log line per request.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", auth.AdminPasswordHeader, RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/ping", Ping)
	r.GET("/readyz", Ready(cfg.ReadyChecks))

	// adminMiddleware: accepts an admin bearer token or the admin password header.
	adminMiddleware := auth.AdminRequired(cfg.JWTManager, cfg.Admin)
	limit := func(scope string) gin.HandlerFunc {
		return RateLimit(cfg.Limiter, scope, cfg.LimitFailOpen)
	}

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	overrideHandler := overrideHttp.NewHandler(cfg.OverrideService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	authHandler := authHttp.NewHandler(cfg.Admin)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		availabilityHttp.RegisterRoutes(v1, availabilityHandler, limit("availability"))
		catalogHttp.RegisterRoutes(v1, catalogHandler, adminMiddleware)
		overrideHttp.RegisterRoutes(v1, overrideHandler, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, adminMiddleware, limit("reservations"))
		authHttp.RegisterRoutes(v1, authHandler, limit("login"))
	}

	return r
}
