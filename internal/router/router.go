package router

import (
	"fmt"
	"strings"

	"github.com/sara-ops/sara-api/internal/cache"
	"github.com/sara-ops/sara-api/internal/config"
	adminhandlers "github.com/sara-ops/sara-api/internal/http/handlers/admin"
	staffhandlers "github.com/sara-ops/sara-api/internal/http/handlers/staff"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/logger"
	"github.com/sara-ops/sara-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	staffHandler := staffhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sara"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		apiV1.POST("/auth/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), staffHandler.Login)

		authorized := apiV1.Group("")
		authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RBACMiddleware(c.AuthzService))
		{
			authorized.GET("/auth/me", staffHandler.Me)
			authorized.POST("/auth/password", staffHandler.ChangePassword)

			// Customer register
			authorized.POST("/customers", staffHandler.CreateCustomer)
			authorized.GET("/customers", staffHandler.ListCustomers)
			authorized.GET("/customers/:id", staffHandler.GetCustomer)

			// Order intake and listing
			authorized.POST("/orders", staffHandler.CreateOrder)
			authorized.GET("/orders", staffHandler.ListOrders)
			authorized.GET("/orders/board", staffHandler.Board)
			authorized.GET("/orders/:id", staffHandler.GetOrder)

			// Scale and dispatch
			authorized.PUT("/orders/:id/weights", staffHandler.RecordWeights)
			authorized.POST("/orders/:id/deliver", staffHandler.MarkDelivered)

			// Catalog
			authorized.GET("/products", staffHandler.ListProducts)

			// Administration
			authorized.GET("/approvals/customers", adminHandler.ListPendingCustomers)
			authorized.GET("/approvals/orders", adminHandler.ListPendingOrders)
			authorized.POST("/customers/:id/approve", adminHandler.ApproveCustomer)
			authorized.POST("/customers/:id/reject", adminHandler.RejectCustomer)
			authorized.POST("/orders/:id/approve", adminHandler.ApproveOrder)
			authorized.POST("/orders/:id/reject", adminHandler.RejectOrder)
			authorized.DELETE("/orders/:id", adminHandler.DeleteOrder)
			authorized.POST("/products", adminHandler.CreateProduct)
			authorized.PATCH("/products/:id/active", adminHandler.SetProductActive)
			authorized.GET("/events", adminHandler.ListEvents)
			authorized.POST("/users", adminHandler.CreateUser)
			authorized.GET("/users", adminHandler.ListUsers)
			authorized.PATCH("/users/:id/active", adminHandler.SetUserActive)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	return r
}
