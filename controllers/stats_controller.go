package controllers

import (
	"math"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/aslcolakogluu/spotted/models"
	"github.com/aslcolakogluu/spotted/store"
)

type StatsController struct {
	Spots      *store.SpotStore
	Activities *store.ActivityStore
}

func NewStatsController(spots *store.SpotStore, activities *store.ActivityStore) *StatsController {
	return &StatsController{Spots: spots, Activities: activities}
}

type CategoryStat struct {
	Category   models.SpotType `json:"category"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

type StatsResponse struct {
	TotalSpots        int            `json:"totalSpots"`
	TotalActivities   int            `json:"totalActivities"`
	TotalReviews      int            `json:"totalReviews"`
	AverageRating     float64        `json:"averageRating"`
	PopularCategories []CategoryStat `json:"popularCategories"`
}

// GetStats godoc
// @Summary Directory-wide statistics computed live from the stores
// @Tags stats
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /stats [get]
func (st *StatsController) GetStats(c *gin.Context) {
	spots := st.Spots.List()

	var ratingSum float64
	var ratedCount, totalReviews int
	counts := make(map[models.SpotType]int)
	for _, s := range spots {
		counts[s.Type]++
		totalReviews += s.ReviewCount
		// Unrated spots are excluded from the average, not counted as zero.
		if s.Rating > 0 {
			ratingSum += s.Rating
			ratedCount++
		}
	}

	var averageRating float64
	if ratedCount > 0 {
		averageRating = round1(ratingSum / float64(ratedCount))
	}

	categories := make([]CategoryStat, 0, len(counts))
	for t, n := range counts {
		percentage := 0.0
		if len(spots) > 0 {
			percentage = round1(float64(n) / float64(len(spots)) * 100)
		}
		categories = append(categories, CategoryStat{Category: t, Count: n, Percentage: percentage})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Category < categories[j].Category
	})

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: StatsResponse{
			TotalSpots:        len(spots),
			TotalActivities:   st.Activities.Count(),
			TotalReviews:      totalReviews,
			AverageRating:     averageRating,
			PopularCategories: categories,
		},
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
