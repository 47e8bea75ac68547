package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aslcolakogluu/spotted/models"
	"github.com/aslcolakogluu/spotted/query"
	"github.com/aslcolakogluu/spotted/store"
	"github.com/aslcolakogluu/spotted/utils"
)

type SpotController struct {
	Spots      *store.SpotStore
	Activities *store.ActivityStore
	PageSize   int
}

func NewSpotController(spots *store.SpotStore, activities *store.ActivityStore, pageSize int) *SpotController {
	return &SpotController{Spots: spots, Activities: activities, PageSize: pageSize}
}

type SpotListQuery struct {
	Types    []string `form:"type"`
	Bands    []int    `form:"band" binding:"omitempty,dive,oneof=3 4 5"`
	Search   string   `form:"q"`
	Verified bool     `form:"verified"`
	SortBy   string   `form:"sort"`
	Page     int      `form:"page,default=1"`
	PageSize int      `form:"pageSize" binding:"omitempty,min=1,max=50"`
}

type CreateSpotRequest struct {
	Name         string   `json:"name" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	Latitude     float64  `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude    float64  `json:"longitude" binding:"required,min=-180,max=180"`
	ImageURL     string   `json:"imageUrl"`
	Tags         []string `json:"tags"`
	OpeningHours string   `json:"openingHours"`
	PriceRange   string   `json:"priceRange"`
	AddedBy      string   `json:"addedBy"`
}

type UpdateSpotRequest struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type"`
	Description  *string  `json:"description"`
	Address      *string  `json:"address"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	ImageURL     *string  `json:"imageUrl"`
	Tags         []string `json:"tags"`
	OpeningHours *string  `json:"openingHours"`
	PriceRange   *string  `json:"priceRange"`
	IsVerified   *bool    `json:"isVerified"`
	IsFeatured   *bool    `json:"isFeatured"`
	Rating       *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount  *int     `json:"reviewCount" binding:"omitempty,min=0"`
}

// ListSpots godoc
// @Summary List spots filtered, sorted and paginated by the query pipeline
// @Tags spots
// @Produce json
// @Param type query []string false "Category filter, repeatable"
// @Param band query []int false "Star bands: 5, 4, or 3 (three and below)"
// @Param q query string false "Free-text search over name, address, description"
// @Param sort query string false "Sort: relevance, rating, newest, most_reviewed"
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 9, max: 50)"
// @Success 200 {object} StandardResponse
// @Router /spots [get]
func (sc *SpotController) ListSpots(c *gin.Context) {
	var q SpotListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pageSize := sc.PageSize
	if q.PageSize > 0 {
		pageSize = q.PageSize
	}

	d := query.NewDescriptor(pageSize)
	d.Types = parseSpotTypes(q.Types)
	d.Bands = q.Bands
	d.Search = q.Search
	d.VerifiedOnly = q.Verified
	d.SortBy = query.ParseSortOption(q.SortBy)
	d.Page = q.Page

	result := query.Run(sc.Spots.List(), d)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    result.Items,
		Pagination: &PaginationMeta{
			CurrentPage:  d.Page,
			PageSize:     d.PageSize,
			TotalItems:   int64(result.TotalItems),
			TotalPages:   result.TotalPages,
			VisiblePages: result.VisiblePages,
		},
	})
}

// GetFeaturedSpots godoc
// @Summary List spots marked as featured
// @Tags spots
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /spots/featured [get]
func (sc *SpotController) GetFeaturedSpots(c *gin.Context) {
	featured := []models.Spot{}
	for _, s := range sc.Spots.List() {
		if s.IsFeatured {
			featured = append(featured, s)
		}
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: featured})
}

// GetTrendingSpots godoc
// @Summary Top spots by rating x review count, for the sidebar ranking
// @Tags spots
// @Produce json
// @Param limit query integer false "Number of spots to return (default: 5)"
// @Success 200 {object} StandardResponse
// @Router /spots/trending [get]
func (sc *SpotController) GetTrendingSpots(c *gin.Context) {
	limit := utils.ParseInt(c.Query("limit"))
	if limit <= 0 {
		limit = 5
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    query.TopRankings(sc.Spots.List(), limit),
	})
}

// GetSpotDetails godoc
// @Summary Get a single spot by id
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} StandardResponse
// @Router /spots/{id} [get]
func (sc *SpotController) GetSpotDetails(c *gin.Context) {
	spot, ok := sc.Spots.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: spot})
}

// CreateSpot godoc
// @Summary Create a new spot and record a spot_added activity
// @Tags spots
// @Accept json
// @Produce json
// @Success 201 {object} StandardResponse
// @Router /spots [post]
func (sc *SpotController) CreateSpot(c *gin.Context) {
	var req CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spotType, ok := models.ParseSpotType(req.Type)
	if !ok {
		spotType = models.SpotTypeOther
	}

	spot := sc.Spots.Create(store.CreateSpotInput{
		Name:         req.Name,
		Type:         spotType,
		Description:  req.Description,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ImageURL:     req.ImageURL,
		Tags:         req.Tags,
		OpeningHours: req.OpeningHours,
		PriceRange:   req.PriceRange,
	})

	addedBy := req.AddedBy
	if addedBy == "" {
		addedBy = "Anonymous"
	}
	sc.Activities.Add(store.AddActivityInput{
		Type:        models.ActivitySpotAdded,
		UserName:    addedBy,
		SpotID:      spot.ID,
		Action:      "added a new spot",
		Description: spot.Name,
	})

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    spot,
		Message: "Spot created",
	})
}

// UpdateSpot godoc
// @Summary Partially update a spot; omitted fields are left unchanged
// @Tags spots
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} StandardResponse
// @Router /spots/{id} [put]
func (sc *SpotController) UpdateSpot(c *gin.Context) {
	var req UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := store.UpdateSpotInput{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ImageURL:     req.ImageURL,
		Tags:         req.Tags,
		OpeningHours: req.OpeningHours,
		PriceRange:   req.PriceRange,
		IsVerified:   req.IsVerified,
		IsFeatured:   req.IsFeatured,
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
	}
	if req.Type != nil {
		spotType, ok := models.ParseSpotType(*req.Type)
		if !ok {
			spotType = models.SpotTypeOther
		}
		input.Type = &spotType
	}

	spot, ok := sc.Spots.Update(c.Param("id"), input)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    spot,
		Message: "Spot updated",
	})
}

// DeleteSpot godoc
// @Summary Delete a spot by id
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} StandardResponse
// @Router /spots/{id} [delete]
func (sc *SpotController) DeleteSpot(c *gin.Context) {
	if !sc.Spots.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Spot deleted"})
}

func parseSpotTypes(raw []string) []models.SpotType {
	types := make([]models.SpotType, 0, len(raw))
	for _, v := range raw {
		// Unrecognized category values are dropped, not rejected.
		if t, ok := models.ParseSpotType(v); ok {
			types = append(types, t)
		}
	}
	return types
}
