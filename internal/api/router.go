package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/rimonomega/sampleapp/docs"
	"github.com/rimonomega/sampleapp/internal/api/handler"
	"github.com/rimonomega/sampleapp/internal/api/middleware"
	"github.com/rimonomega/sampleapp/internal/api/websession"
	"github.com/rimonomega/sampleapp/internal/core/ports"
	"github.com/rimonomega/sampleapp/internal/core/service"
	"github.com/rimonomega/sampleapp/internal/infrastructure/cookiesign"
	mongorepo "github.com/rimonomega/sampleapp/internal/infrastructure/db/mongo"
	redisstore "github.com/rimonomega/sampleapp/internal/infrastructure/db/redis"
	"github.com/rimonomega/sampleapp/internal/pkg/config"
)

const cookieIssuer = "sampleapp"

// Dependencies are the long-lived resources the router is built from.
type Dependencies struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Audit  ports.AuthEventSink
	Config *config.Config
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	cfg := deps.Config
	log := deps.Logger

	signer, err := cookiesign.New(cfg.Session.CookieSecret, cookieIssuer)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddleware("sampleapp"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(deps.DB)
	micropostRepo := mongorepo.NewMicropostRepository(deps.DB)
	relationshipRepo := mongorepo.NewRelationshipRepository(deps.DB)

	userService := service.NewUserService(userRepo, cfg.Session.BcryptCost, log)
	relationshipService := service.NewRelationshipService(relationshipRepo, userRepo, log)
	feedService := service.NewFeedService(micropostRepo, relationshipRepo, log)
	micropostService := service.NewMicropostService(micropostRepo, log)
	sessions := service.NewSessionManager(userRepo, signer, deps.Audit, cfg.Session.BcryptCost, log)

	sessionHandler := handler.NewSessionHandler(userService)
	userHandler := handler.NewUserHandler(userService, relationshipService, micropostService)
	relationshipHandler := handler.NewRelationshipHandler(relationshipService)
	micropostHandler := handler.NewMicropostHandler(micropostService, feedService)
	healthHandler := handler.NewHealthHandler(map[string]handler.Check{
		"mongodb": handler.MongoCheck(deps.DB),
		"redis":   handler.RedisCheck(deps.Redis),
	})

	// --- Infra routes (no session) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session-aware routes ---
	app := e.Group("", websession.Middleware(
		redisstore.NewSessionStore(deps.Redis, cfg.Session.TTL),
		sessions,
		websession.Options{Secure: cfg.Session.CookieSecure, Logger: log},
	))
	requireLogin := middleware.RequireLogin()

	app.POST("/signup", sessionHandler.Signup)
	app.POST("/login", sessionHandler.Login)
	app.DELETE("/logout", sessionHandler.Logout)
	app.GET("/me", sessionHandler.Me, requireLogin)
	app.POST("/sessions/revoke", sessionHandler.Revoke, requireLogin)

	app.GET("/users/:id", userHandler.Get, requireLogin)
	app.DELETE("/users/:id", userHandler.Destroy, requireLogin, middleware.RequireAdmin())
	app.GET("/users/:id/followers", userHandler.Followers, requireLogin)
	app.GET("/users/:id/following", userHandler.Following, requireLogin)

	app.POST("/relationships", relationshipHandler.Follow, requireLogin)
	app.DELETE("/relationships/:followed_id", relationshipHandler.Unfollow, requireLogin)

	app.GET("/feed", micropostHandler.Feed, requireLogin)
	app.POST("/microposts", micropostHandler.Create, requireLogin)
	app.DELETE("/microposts/:id", micropostHandler.Delete, requireLogin)

	return e, nil
}

// requestLogger emits one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
