package cache

import (
	"strconv"

	"github.com/google/uuid"
)

// DashboardVersionKey holds a counter bumped whenever a landlord's
// dashboard inputs change.
func DashboardVersionKey(landlordID uuid.UUID) string {
	return "dashboard:version:" + landlordID.String()
}

// DashboardKey is the cache key of a landlord's dashboard stats computed at
// the given version. Stats written under an old version are never read again.
func DashboardKey(landlordID uuid.UUID, version int64) string {
	return "dashboard:stats:" + landlordID.String() + ":v" + strconv.FormatInt(version, 10)
}
