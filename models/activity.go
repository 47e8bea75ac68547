package models

import "time"

// ActivityType identifies what kind of user action an activity records.
type ActivityType string

const (
	ActivitySpotAdded     ActivityType = "spot_added"
	ActivitySpotReviewed  ActivityType = "spot_reviewed"
	ActivitySpotVisited   ActivityType = "spot_visited"
	ActivitySpotFavorited ActivityType = "spot_favorited"
	ActivitySpotShared    ActivityType = "spot_shared"
	ActivityUserJoined    ActivityType = "user_joined"
)

// ParseActivityType returns the matching activity type, or false for an
// unrecognized value.
func ParseActivityType(s string) (ActivityType, bool) {
	t := ActivityType(s)
	switch t {
	case ActivitySpotAdded, ActivitySpotReviewed, ActivitySpotVisited,
		ActivitySpotFavorited, ActivitySpotShared, ActivityUserJoined:
		return t, true
	}
	return "", false
}

// Activity is an immutable, append-only record of a user action in the feed.
type Activity struct {
	ID          string                 `json:"id"`
	Type        ActivityType           `json:"type"`
	UserID      string                 `json:"userId"`
	UserName    string                 `json:"userName"`
	UserAvatar  string                 `json:"userAvatar,omitempty"`
	SpotID      string                 `json:"spotId,omitempty"`
	Action      string                 `json:"action"`
	Description string                 `json:"description,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
