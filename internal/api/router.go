package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cafehub/menu-api/internal/api/handler"
	"github.com/cafehub/menu-api/internal/api/middleware"
	"github.com/cafehub/menu-api/internal/core/service"
	"github.com/cafehub/menu-api/internal/infrastructure/config"
	mongodb "github.com/cafehub/menu-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cafehub/menu-api/internal/infrastructure/db/redis"
	"github.com/cafehub/menu-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("menu"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	drinkRepo := mongodb.NewDrinkRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.MaxLoginAttempts, cfg.LoginLockWindow)

	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	drinkService := service.NewDrinkService(drinkRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	drinkHandler := handler.NewDrinkHandler(drinkService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	auth := middleware.Auth(tokens)
	authAdmin := middleware.AuthAdmin(tokens)
	authOptional := middleware.AuthOptional(tokens)

	// --- Users & auth ---
	users := e.Group("/users")
	users.POST("", userHandler.Register, authOptional)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout, auth)
	users.GET("/check-token", authHandler.CheckToken, auth)
	users.GET("/me", userHandler.Me, auth)
	users.GET("", userHandler.List, authAdmin)
	users.PUT("/:id/role", userHandler.ChangeRole, authAdmin)
	users.DELETE("/:id", userHandler.Delete, authAdmin)
	users.PATCH("/favorites", userHandler.UpdateFavorites, auth)

	// --- Products ---
	products := e.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.GET("/user/:user_id", productHandler.ListByUser, auth)
	products.POST("", productHandler.Create, auth)
	products.PUT("/:id", productHandler.Update, auth)
	products.DELETE("/:id", productHandler.Delete, auth)

	// --- Drinks ---
	drinks := e.Group("/drinks", auth)
	drinks.GET("", drinkHandler.List)
	drinks.GET("/:id", drinkHandler.Get)
	drinks.POST("", drinkHandler.Create)
	drinks.PUT("/:id", drinkHandler.Update)
	drinks.DELETE("/:id", drinkHandler.Delete)

	// --- Categories ---
	categories := e.Group("/categories")
	categories.GET("", categoryHandler.List, auth)
	categories.POST("", categoryHandler.Create, authAdmin)
	categories.PUT("/:id", categoryHandler.Update, authAdmin)
	categories.DELETE("/:id", categoryHandler.Delete, authAdmin)

	// --- Health probes (no auth required) ---
	health := handlers.NewHealthHandler(db, rdb)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
