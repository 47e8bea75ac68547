// Package store holds the in-memory repositories backing the API. The spot
// collection is the only mutable shared state in the service; every mutation
// broadcasts a fresh snapshot to subscribers so dependent views re-query
// without polling.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aslcolakogluu/spotted/models"
)

// PlaceholderImage is used when a spot is created without a cover image.
const PlaceholderImage = "/assets/placeholder.jpg"

// CreateSpotInput carries the caller-supplied fields for a new spot.
// System-owned fields (id, rating, review count, timestamps, flags) are
// assigned by the store.
type CreateSpotInput struct {
	Name         string
	Type         models.SpotType
	Description  string
	Address      string
	Latitude     float64
	Longitude    float64
	ImageURL     string
	Tags         []string
	OpeningHours string
	PriceRange   string
}

// UpdateSpotInput is a partial update; nil fields are left unchanged.
type UpdateSpotInput struct {
	Name         *string
	Type         *models.SpotType
	Description  *string
	Address      *string
	Latitude     *float64
	Longitude    *float64
	ImageURL     *string
	Tags         []string
	OpeningHours *string
	PriceRange   *string
	IsVerified   *bool
	IsFeatured   *bool
	Rating       *float64
	ReviewCount  *int
}

// Subscriber receives the full post-mutation collection snapshot.
type Subscriber func([]models.Spot)

// SpotStore is the authoritative in-memory spot collection. A single mutex
// guards the collection and the subscriber list; snapshots are delivered while
// the lock is held so no subscriber ever sees them out of order.
type SpotStore struct {
	mu          sync.Mutex
	spots       []models.Spot
	subscribers map[int]Subscriber
	nextSubID   int
	now         func() time.Time
}

// NewSpotStore builds a store pre-populated with seed, which may be nil.
func NewSpotStore(seed []models.Spot) *SpotStore {
	spots := make([]models.Spot, len(seed))
	copy(spots, seed)
	return &SpotStore{
		spots:       spots,
		subscribers: make(map[int]Subscriber),
		now:         time.Now,
	}
}

// List returns a snapshot of the full collection in insertion order.
func (s *SpotStore) List() []models.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// GetByID looks a spot up by id. A missing id is not an error; the second
// return value reports presence.
func (s *SpotStore) GetByID(id string) (models.Spot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, spot := range s.spots {
		if spot.ID == id {
			return spot, true
		}
	}
	return models.Spot{}, false
}

// Create assigns a fresh id and system defaults, appends the spot and
// notifies subscribers.
func (s *SpotStore) Create(input CreateSpotInput) models.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	spot := models.Spot{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Type:         input.Type,
		Description:  input.Description,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Rating:       0,
		ReviewCount:  0,
		Tags:         input.Tags,
		OpeningHours: input.OpeningHours,
		PriceRange:   input.PriceRange,
		IsVerified:   false,
		IsFeatured:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
		ImageURL:     input.ImageURL,
	}
	if spot.ImageURL == "" {
		spot.ImageURL = PlaceholderImage
	}
	if spot.Tags == nil {
		spot.Tags = []string{}
	}

	s.spots = append(s.spots, spot)
	s.notifyLocked()
	return spot
}

// Update merges the supplied fields over the existing record and refreshes
// updatedAt. The id itself can never change. Returns false when id is absent.
func (s *SpotStore) Update(id string, input UpdateSpotInput) (models.Spot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.spots {
		if s.spots[i].ID != id {
			continue
		}

		spot := &s.spots[i]
		if input.Name != nil {
			spot.Name = *input.Name
		}
		if input.Type != nil {
			spot.Type = *input.Type
		}
		if input.Description != nil {
			spot.Description = *input.Description
		}
		if input.Address != nil {
			spot.Address = *input.Address
		}
		if input.Latitude != nil {
			spot.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			spot.Longitude = *input.Longitude
		}
		if input.ImageURL != nil {
			spot.ImageURL = *input.ImageURL
		}
		if input.Tags != nil {
			spot.Tags = input.Tags
		}
		if input.OpeningHours != nil {
			spot.OpeningHours = *input.OpeningHours
		}
		if input.PriceRange != nil {
			spot.PriceRange = *input.PriceRange
		}
		if input.IsVerified != nil {
			spot.IsVerified = *input.IsVerified
		}
		if input.IsFeatured != nil {
			spot.IsFeatured = *input.IsFeatured
		}
		if input.Rating != nil {
			spot.Rating = *input.Rating
		}
		if input.ReviewCount != nil {
			spot.ReviewCount = *input.ReviewCount
		}
		spot.UpdatedAt = s.now()

		s.notifyLocked()
		return *spot, true
	}

	return models.Spot{}, false
}

// Delete removes the record if present and reports whether a removal occurred.
func (s *SpotStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.spots {
		if s.spots[i].ID == id {
			s.spots = append(s.spots[:i], s.spots[i+1:]...)
			s.notifyLocked()
			return true
		}
	}
	return false
}

// Subscribe registers fn to receive the collection snapshot after every
// mutation. The returned function cancels the subscription.
func (s *SpotStore) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *SpotStore) snapshotLocked() []models.Spot {
	out := make([]models.Spot, len(s.spots))
	copy(out, s.spots)
	return out
}

func (s *SpotStore) notifyLocked() {
	snapshot := s.snapshotLocked()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}
