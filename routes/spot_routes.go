package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aslcolakogluu/spotted/controllers"
)

func SetupSpotRoutes(api *gin.RouterGroup, spotController *controllers.SpotController) {
	spots := api.Group("/spots")
	{
		spots.GET("", spotController.ListSpots)
		spots.GET("/featured", spotController.GetFeaturedSpots)
		spots.GET("/trending", spotController.GetTrendingSpots)
		spots.GET("/:id", spotController.GetSpotDetails)
		spots.POST("", spotController.CreateSpot)
		spots.PUT("/:id", spotController.UpdateSpot)
		spots.DELETE("/:id", spotController.DeleteSpot)
	}
}
