package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"homewatt/internal/handlers"
	"homewatt/internal/logger"
)

func SetupRouter(
	estimateHandler *handlers.EstimateHandler,
	sessionHandler *handlers.SessionHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request latency logging through the app logger.
	router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("[%s] %s %s %v", c.Request.Method, path, c.ClientIP(), time.Since(start))
	})

	api := router.Group("/api")
	{
		// Reference tables
		api.GET("/profiles", estimateHandler.GetProfiles)
		api.GET("/multipliers", estimateHandler.GetMultipliers)

		// One-shot estimate
		api.POST("/estimate", estimateHandler.Estimate)

		// Tracked week
		api.POST("/sessions", sessionHandler.CreateSession)
		api.PUT("/sessions/:id/days/:day", sessionHandler.RecordDay)
		api.GET("/sessions/:id/days", sessionHandler.ListDays)
		api.GET("/sessions/:id/report", sessionHandler.GetReport)
		api.GET("/sessions/:id/report/pdf", sessionHandler.GetReportPDF)
	}

	return router
}
