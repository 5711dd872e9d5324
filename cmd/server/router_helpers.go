package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"betterside.backend/internal/interfaces/http/handlers"
	"betterside.backend/internal/interfaces/http/middleware"
	"betterside.backend/pkg/metrics"
)

// applyCORSMiddleware allows the configured frontends to send the session cookie
func applyCORSMiddleware(r *gin.Engine, origins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			middleware.AuthorizationHeader,
			middleware.SessionHeader,
			middleware.RequestIDHeader,
			middleware.IdempotencyHeader,
		},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-Idempotency-Hit"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func registerHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Health)
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
