package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aslcolakogluu/spotted/config"
	"github.com/aslcolakogluu/spotted/controllers"
	"github.com/aslcolakogluu/spotted/store"
)

func SetupRoutes(r *gin.Engine, spots *store.SpotStore, activities *store.ActivityStore, cfg config.Config) {
	// Initialize controllers
	spotController := controllers.NewSpotController(spots, activities, cfg.PageSize)
	activityController := controllers.NewActivityController(activities)
	statsController := controllers.NewStatsController(spots, activities)

	api := r.Group("/api")
	{
		SetupSpotRoutes(api, spotController)
		SetupActivityRoutes(api, activityController)
		api.GET("/stats", statsController.GetStats)
	}
}
