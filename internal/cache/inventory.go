package cache

import (
	"context"
	"fmt"
	"time"
)

// Key inventory. Filtered searches are never cached; only the unfiltered
// browse list, the homepage featured list, single locations and the admin
// review queue are.
const (
	LocationKeyPrefix  = "location:%d"
	LocationsListKey   = "locations:list"
	FeaturedKey        = "locations:featured"
	SubmissionsListKey = "submissions:list"
)

const (
	LocationTTL    = 10 * time.Minute
	ListTTL        = 2 * time.Minute
	SubmissionsTTL = 30 * time.Second
)

func LocationKey(locationID uint) string {
	return fmt.Sprintf(LocationKeyPrefix, locationID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateLocations drops every cached view of the locations collection.
// Mutating workflows call this after each successful write that touches
// locations (approve, admin create/update/delete).
func InvalidateLocations(ctx context.Context, locationIDs ...uint) {
	Invalidate(ctx, LocationsListKey)
	Invalidate(ctx, FeaturedKey)
	for _, id := range locationIDs {
		Invalidate(ctx, LocationKey(id))
	}
}

// InvalidateSubmissions drops the cached admin review queue. Called after
// every successful submission mutation (create, approve, reject, edit, delete).
func InvalidateSubmissions(ctx context.Context) {
	Invalidate(ctx, SubmissionsListKey)
}
