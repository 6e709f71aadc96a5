package cache

import (
	"fmt"
	"time"
)

const (
	// UserKeyPrefix is the key format for cached owner summaries.
	UserKeyPrefix = "user:%d"
)

const (
	// UserTTL bounds staleness of cached owner summaries. Users are immutable
	// after registration, so a short TTL is plenty.
	UserTTL = 5 * time.Minute
)

// UserKey returns the cache key for a user's owner summary.
func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}
