package store

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/aslcolakogluu/spotted/models"
)

var bestTimeSlots = []string{"07:00-09:00", "12:00-14:00", "17:00-19:00", "20:00-22:00"}

// bestTimeFor derives a stable "best time to visit" for a spot id. The value
// is a display attribute with no real data behind it, so it only has to be
// deterministic per id.
func bestTimeFor(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	return bestTimeSlots[h.Sum32()%uint32(len(bestTimeSlots))]
}

// distanceFor derives a stable pseudo-distance in the 0.5-5.5 km range for a
// spot id, standing in for a real GPS computation.
func distanceFor(id string) float64 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return 0.5 + float64(h.Sum32()%51)/10.0
}

func seedSpot(s models.Spot) models.Spot {
	s.BestTime = bestTimeFor(s.ID)
	s.DistanceKm = distanceFor(s.ID)
	return s
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(fmt.Sprintf("bad seed date %q: %v", value, err))
	}
	return t
}

// SeedSpots returns the demo spot collection. Derived display attributes
// (best time, distance) are computed here, once, so nothing is lazily cached
// at read time.
func SeedSpots() []models.Spot {
	spots := []models.Spot{
		{
			ID:           "1",
			Name:         "City Bridge",
			Type:         models.SpotTypeBridge,
			Description:  "Historic iron bridge with a quiet view over the old town",
			Address:      "Kızılay, Ankara",
			Latitude:     39.9208,
			Longitude:    32.8541,
			Rating:       4.5,
			ReviewCount:  127,
			Tags:         []string{"view", "walking", "quiet"},
			OpeningHours: "Open 24 hours",
			PriceRange:   "Free",
			IsVerified:   true,
			IsFeatured:   true,
			CreatedAt:    date("2024-01-15"),
			UpdatedAt:    date("2024-02-01"),
			ImageURL:     "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=1920&q=80",
		},
		{
			ID:           "2",
			Name:         "Sunset Hill",
			Type:         models.SpotTypeNature,
			Description:  "Breathtaking sunset viewpoint above the city",
			Address:      "Çankaya, Ankara",
			Latitude:     39.9185,
			Longitude:    32.8543,
			Rating:       4.8,
			ReviewCount:  234,
			Tags:         []string{"breathtaking", "romantic", "sunset"},
			OpeningHours: "6 AM - 11 PM",
			PriceRange:   "Free",
			IsVerified:   true,
			IsFeatured:   true,
			CreatedAt:    date("2024-01-10"),
			UpdatedAt:    date("2024-01-28"),
			ImageURL:     "https://images.unsplash.com/photo-1470770841072-f978cf4d019e?w=1920&q=80",
		},
		{
			ID:           "3",
			Name:         "City Park",
			Type:         models.SpotTypePark,
			Description:  "Spacious park with walking trails, playgrounds, and picnic areas",
			Address:      "Ulus, Ankara",
			Latitude:     39.9334,
			Longitude:    32.8597,
			Rating:       4.3,
			ReviewCount:  89,
			Tags:         []string{"family", "nature", "walking"},
			OpeningHours: "6 AM - 10 PM",
			PriceRange:   "Free",
			IsVerified:   true,
			IsFeatured:   false,
			CreatedAt:    date("2024-01-20"),
			UpdatedAt:    date("2024-02-02"),
			ImageURL:     "https://images.unsplash.com/photo-1519331379826-f10be5486c6f?w=1920&q=80",
		},
		{
			ID:           "4",
			Name:         "Art Gallery",
			Type:         models.SpotTypeMuseum,
			Description:  "Modern art pieces displayed in a beautiful gallery",
			Address:      "Kavaklıdere, Ankara",
			Latitude:     39.9120,
			Longitude:    32.8620,
			Rating:       4.6,
			ReviewCount:  156,
			Tags:         []string{"art", "culture", "exhibition"},
			OpeningHours: "10:00 AM - 7:00 PM",
			PriceRange:   "₺",
			IsVerified:   true,
			IsFeatured:   true,
			CreatedAt:    date("2024-01-05"),
			UpdatedAt:    date("2024-01-30"),
			ImageURL:     "https://images.unsplash.com/photo-1554907984-15263bfd63bd?w=1920&q=80",
		},
		{
			ID:           "5",
			Name:         "Anatolian Civilizations Museum",
			Type:         models.SpotTypeHistorical,
			Description:  "World-class collection spanning the Hittite and Phrygian eras",
			Address:      "Altındağ, Ankara",
			Latitude:     39.9390,
			Longitude:    32.8610,
			Rating:       4.9,
			ReviewCount:  312,
			Tags:         []string{"history", "culture", "museum"},
			OpeningHours: "8:30 AM - 5:30 PM",
			PriceRange:   "₺₺",
			IsVerified:   true,
			IsFeatured:   false,
			CreatedAt:    date("2024-01-12"),
			UpdatedAt:    date("2024-02-03"),
			ImageURL:     "https://images.unsplash.com/photo-1566127992631-137a642a90f4?w=1920&q=80",
		},
		{
			ID:           "6",
			Name:         "Riverside Courts",
			Type:         models.SpotTypeSports,
			Description:  "Open-air basketball and tennis courts by the creek",
			Address:      "Bahçelievler, Ankara",
			Latitude:     39.9230,
			Longitude:    32.8180,
			Rating:       0,
			ReviewCount:  0,
			Tags:         []string{"sports", "outdoor"},
			OpeningHours: "7 AM - 10 PM",
			PriceRange:   "Free",
			IsVerified:   false,
			IsFeatured:   false,
			CreatedAt:    date("2024-02-05"),
			UpdatedAt:    date("2024-02-05"),
			ImageURL:     PlaceholderImage,
		},
	}

	for i := range spots {
		spots[i] = seedSpot(spots[i])
	}
	return spots
}

// SeedActivities returns the demo activity feed, newest first.
func SeedActivities() []models.Activity {
	now := time.Now()

	return []models.Activity{
		{
			ID:          "1",
			Type:        models.ActivitySpotAdded,
			UserID:      "user1",
			UserName:    "Ahmet Yılmaz",
			UserAvatar:  "/assets/avatars/user1.jpg",
			SpotID:      "6",
			Action:      "added a new spot",
			Description: "Riverside Courts",
			Timestamp:   now.Add(-15 * time.Minute),
		},
		{
			ID:          "2",
			Type:        models.ActivitySpotReviewed,
			UserID:      "user2",
			UserName:    "Ayşe Demir",
			UserAvatar:  "/assets/avatars/user2.jpg",
			SpotID:      "2",
			Action:      "wrote a review",
			Description: "Sunset Hill",
			Timestamp:   now.Add(-30 * time.Minute),
			Metadata: map[string]interface{}{
				"rating":     5,
				"reviewText": "Best view in the city, highly recommend!",
			},
		},
		{
			ID:          "3",
			Type:        models.ActivitySpotVisited,
			UserID:      "user3",
			UserName:    "Mehmet Kaya",
			UserAvatar:  "/assets/avatars/user3.jpg",
			SpotID:      "3",
			Action:      "visited",
			Description: "City Park",
			Timestamp:   now.Add(-45 * time.Minute),
		},
		{
			ID:          "4",
			Type:        models.ActivitySpotFavorited,
			UserID:      "user4",
			UserName:    "Fatma Öz",
			UserAvatar:  "/assets/avatars/user4.jpg",
			SpotID:      "4",
			Action:      "favorited",
			Description: "Art Gallery",
			Timestamp:   now.Add(-time.Hour),
		},
		{
			ID:          "5",
			Type:        models.ActivitySpotShared,
			UserID:      "user5",
			UserName:    "Ali Şahin",
			UserAvatar:  "/assets/avatars/user5.jpg",
			SpotID:      "1",
			Action:      "shared",
			Description: "City Bridge",
			Timestamp:   now.Add(-90 * time.Minute),
			Metadata: map[string]interface{}{
				"shareCount": 12,
			},
		},
		{
			ID:         "6",
			Type:       models.ActivityUserJoined,
			UserID:     "user6",
			UserName:   "Zeynep Arslan",
			UserAvatar: "/assets/avatars/user6.jpg",
			Action:     "joined the community",
			Timestamp:  now.Add(-2 * time.Hour),
		},
	}
}
