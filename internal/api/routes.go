package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.POST("/contact", handler.SubmitContact)
		api.GET("/agents", handler.GetAgents)
		api.GET("/calculator/savings", handler.GetSavings)
		api.GET("/site-config", handler.GetSiteConfig)
		api.GET("/health", handler.HealthCheck)

		sessions := api.Group("/listings/sessions")
		{
			sessions.POST("", handler.CreateSession)
			sessions.GET("/:id", handler.GetSession)
			sessions.POST("/:id/details", handler.SubmitDetails)
			sessions.POST("/:id/agent", handler.SelectAgent)
			sessions.POST("/:id/next", handler.AdvanceStep)
			sessions.POST("/:id/back", handler.StepBack)
			sessions.POST("/:id/step", handler.JumpToStep)
			sessions.POST("/:id/submit", handler.SubmitListing)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
