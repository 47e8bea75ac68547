package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aslcolakogluu/spotted/models"
)

// ActivityFilter narrows an activity feed listing. Zero values mean
// "no filtering" for their dimension.
type ActivityFilter struct {
	Types     []models.ActivityType
	UserID    string
	SpotID    string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}

// AddActivityInput carries the caller-supplied fields for a new feed entry.
type AddActivityInput struct {
	Type        models.ActivityType
	UserID      string
	UserName    string
	UserAvatar  string
	SpotID      string
	Action      string
	Description string
	Metadata    map[string]interface{}
}

// ActivityStore is the append-only in-memory activity feed. New entries are
// prepended so the natural order is newest first.
type ActivityStore struct {
	mu         sync.Mutex
	activities []models.Activity
	now        func() time.Time
}

// NewActivityStore builds a store pre-populated with seed, which may be nil.
func NewActivityStore(seed []models.Activity) *ActivityStore {
	activities := make([]models.Activity, len(seed))
	copy(activities, seed)
	return &ActivityStore{
		activities: activities,
		now:        time.Now,
	}
}

// List returns activities matching every set dimension of the filter.
func (s *ActivityStore) List(filter ActivityFilter) []models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		if !matchesActivity(a, filter) {
			continue
		}
		out = append(out, a)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}

// Recent returns the latest activities by timestamp, newest first.
func (s *ActivityStore) Recent(limit int) []models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Add records a new activity with a fresh id and timestamp.
func (s *ActivityStore) Add(input AddActivityInput) models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := models.Activity{
		ID:          uuid.NewString(),
		Type:        input.Type,
		UserID:      input.UserID,
		UserName:    input.UserName,
		UserAvatar:  input.UserAvatar,
		SpotID:      input.SpotID,
		Action:      input.Action,
		Description: input.Description,
		Timestamp:   s.now(),
		Metadata:    input.Metadata,
	}

	s.activities = append([]models.Activity{activity}, s.activities...)
	return activity
}

// Count returns the number of recorded activities.
func (s *ActivityStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activities)
}

func matchesActivity(a models.Activity, f ActivityFilter) bool {
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if a.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.UserID != "" && a.UserID != f.UserID {
		return false
	}
	if f.SpotID != "" && a.SpotID != f.SpotID {
		return false
	}
	if !f.StartDate.IsZero() && a.Timestamp.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && a.Timestamp.After(f.EndDate) {
		return false
	}
	return true
}
