package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslcolakogluu/spotted/models"
)

type activityListResponse struct {
	Success bool              `json:"success"`
	Data    []models.Activity `json:"data"`
}

func TestListActivitiesByType(t *testing.T) {
	r, _, _ := setupTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/activities?type=spot_reviewed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp activityListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, models.ActivitySpotReviewed, resp.Data[0].Type)
}

func TestRecentActivitiesDefaultLimit(t *testing.T) {
	r, _, _ := setupTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/activities/recent?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp activityListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.True(t, resp.Data[0].Timestamp.After(resp.Data[1].Timestamp))
}

func TestStatsComputedFromStores(t *testing.T) {
	r, _, _ := setupTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TotalSpots        int     `json:"totalSpots"`
			TotalActivities   int     `json:"totalActivities"`
			TotalReviews      int     `json:"totalReviews"`
			AverageRating     float64 `json:"averageRating"`
			PopularCategories []struct {
				Category   string  `json:"category"`
				Count      int     `json:"count"`
				Percentage float64 `json:"percentage"`
			} `json:"popularCategories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 6, resp.Data.TotalSpots)
	assert.Equal(t, 6, resp.Data.TotalActivities)
	assert.Equal(t, 918, resp.Data.TotalReviews)
	// Five rated spots: (4.5+4.8+4.3+4.6+4.9)/5; the unrated one is excluded.
	assert.InDelta(t, 4.6, resp.Data.AverageRating, 0.001)
	require.Len(t, resp.Data.PopularCategories, 6)
	assert.Equal(t, 1, resp.Data.PopularCategories[0].Count)
}
