package routes

import (
	"civicconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// AnalyticsRoutes sets up the analytics routes
func AnalyticsRoutes(r *gin.Engine, ac *controllers.AnalyticsController) {
	analytics := r.Group("/api/analytics")
	{
		analytics.GET("", ac.GetStatusCounts)
		analytics.GET("/categories", ac.GetCategoryBreakdown)
	}
}
