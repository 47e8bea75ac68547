package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aslcolakogluu/spotted/models"
	"github.com/aslcolakogluu/spotted/store"
	"github.com/aslcolakogluu/spotted/utils"
)

type ActivityController struct {
	Activities *store.ActivityStore
}

func NewActivityController(activities *store.ActivityStore) *ActivityController {
	return &ActivityController{Activities: activities}
}

type ActivityListQuery struct {
	Types  []string `form:"type"`
	UserID string   `form:"userId"`
	SpotID string   `form:"spotId"`
	Limit  int      `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ListActivities godoc
// @Summary List feed activities with optional filters
// @Tags activities
// @Produce json
// @Param type query []string false "Activity type filter, repeatable"
// @Param userId query string false "Only activities by this user"
// @Param spotId query string false "Only activities about this spot"
// @Param limit query integer false "Maximum number of records"
// @Success 200 {object} StandardResponse
// @Router /activities [get]
func (ac *ActivityController) ListActivities(c *gin.Context) {
	var q ActivityListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := store.ActivityFilter{
		UserID: q.UserID,
		SpotID: q.SpotID,
		Limit:  q.Limit,
	}
	for _, v := range q.Types {
		if t, ok := models.ParseActivityType(v); ok {
			filter.Types = append(filter.Types, t)
		}
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    ac.Activities.List(filter),
	})
}

// GetRecentActivities godoc
// @Summary Latest activities by timestamp, newest first
// @Tags activities
// @Produce json
// @Param limit query integer false "Number of records to return (default: 10)"
// @Success 200 {object} StandardResponse
// @Router /activities/recent [get]
func (ac *ActivityController) GetRecentActivities(c *gin.Context) {
	limit := utils.ParseInt(c.Query("limit"))
	if limit <= 0 {
		limit = 10
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    ac.Activities.Recent(limit),
	})
}
