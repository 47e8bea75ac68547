package models

import "time"

// SpotType is the closed set of categories a spot can belong to.
type SpotType string

const (
	SpotTypeNature     SpotType = "nature"
	SpotTypePark       SpotType = "park"
	SpotTypeBridge     SpotType = "bridge"
	SpotTypeHistorical SpotType = "historical"
	SpotTypeMuseum     SpotType = "museum"
	SpotTypeBeach      SpotType = "beach"
	SpotTypeSports     SpotType = "sports"
	SpotTypeOther      SpotType = "other"
)

// AllSpotTypes lists every recognized category, in display order.
func AllSpotTypes() []SpotType {
	return []SpotType{
		SpotTypeNature,
		SpotTypePark,
		SpotTypeBridge,
		SpotTypeHistorical,
		SpotTypeMuseum,
		SpotTypeBeach,
		SpotTypeSports,
		SpotTypeOther,
	}
}

// ParseSpotType returns the matching category, or false for anything outside
// the closed set.
func ParseSpotType(s string) (SpotType, bool) {
	t := SpotType(s)
	switch t {
	case SpotTypeNature, SpotTypePark, SpotTypeBridge, SpotTypeHistorical,
		SpotTypeMuseum, SpotTypeBeach, SpotTypeSports, SpotTypeOther:
		return t, true
	}
	return "", false
}

// Spot is a point of interest on the map. Rating 0 means "not yet rated",
// not "lowest rated".
type Spot struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         SpotType  `json:"type"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	Tags         []string  `json:"tags"`
	OpeningHours string    `json:"openingHours,omitempty"`
	PriceRange   string    `json:"priceRange,omitempty"`
	BestTime     string    `json:"bestTime,omitempty"`
	DistanceKm   float64   `json:"distanceKm,omitempty"`
	IsVerified   bool      `json:"isVerified"`
	IsFeatured   bool      `json:"isFeatured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ImageURL     string    `json:"imageUrl"`
}
