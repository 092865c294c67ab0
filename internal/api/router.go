package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/filmotheque/catalog-api/docs"
	"github.com/filmotheque/catalog-api/internal/api/handler"
	"github.com/filmotheque/catalog-api/internal/api/middleware"
	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/service"
	"github.com/filmotheque/catalog-api/internal/infrastructure/config"
	mongodb "github.com/filmotheque/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/filmotheque/catalog-api/internal/infrastructure/db/redis"
	"github.com/filmotheque/catalog-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the activity dispatcher so the caller controls its
// lifecycle (Start on boot, Stop on shutdown).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	filmRepo := mongodb.NewFilmRepository(db)
	actorRepo := mongodb.NewActorRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	// --- Redis-backed helpers ---
	catalogCache := redisdb.NewCatalogCache(rdb, cfg.CacheTTL)
	dedup := redisdb.NewDedupChecker(rdb)

	// --- Services ---
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	filmService := service.NewFilmService(filmRepo, actorRepo, catalogCache, log)
	actorService := service.NewActorService(actorRepo, log)
	reviewService := service.NewReviewService(reviewRepo, filmRepo, log)
	activityService := service.NewActivityService(activityRepo, dedup, log)

	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, dispatcher)
	filmHandler := handler.NewFilmHandler(filmService, dispatcher)
	actorHandler := handler.NewActorHandler(actorService, dispatcher)
	reviewHandler := handler.NewReviewHandler(reviewService, dispatcher)
	activityHandler := handler.NewActivityHandler(activityService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Guards ---
	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, authRequired)

	// --- User routes ---
	e.POST("/users", userHandler.Register) // public registration
	e.GET("/users", userHandler.List, authRequired, adminOnly)
	e.GET("/users/:id", userHandler.Get, authRequired)
	e.PATCH("/users/:id", userHandler.Update, authRequired)
	e.DELETE("/users/:id", userHandler.Delete, authRequired)

	// --- Film routes (reads are public, writes admin only) ---
	e.GET("/films", filmHandler.List)
	e.GET("/films/:id", filmHandler.Get)
	e.POST("/films", filmHandler.Create, authRequired, adminOnly)
	e.PATCH("/films/:id", filmHandler.Update, authRequired, adminOnly)
	e.DELETE("/films/:id", filmHandler.Delete, authRequired, adminOnly)

	// --- Actor routes (admin only) ---
	actors := e.Group("/actors", authRequired, adminOnly)
	actors.POST("", actorHandler.Create)
	actors.GET("", actorHandler.List)
	actors.GET("/:id", actorHandler.Get)
	actors.PATCH("/:id", actorHandler.Update)
	actors.DELETE("/:id", actorHandler.Delete)

	// --- Review routes ---
	e.POST("/reviews", reviewHandler.Create, authRequired)
	e.GET("/reviews/film/:filmId", reviewHandler.ListByFilm)
	e.GET("/reviews/user/:userId", reviewHandler.ListByUser)
	e.PATCH("/reviews/:id", reviewHandler.Update, authRequired)
	e.DELETE("/reviews/:id", reviewHandler.Delete, authRequired)

	// --- Audit trail (admin only) ---
	e.GET("/activity", activityHandler.List, authRequired, adminOnly)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
