package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aslcolakogluu/spotted/controllers"
)

func SetupActivityRoutes(api *gin.RouterGroup, activityController *controllers.ActivityController) {
	activities := api.Group("/activities")
	{
		activities.GET("", activityController.ListActivities)
		activities.GET("/recent", activityController.GetRecentActivities)
	}
}
