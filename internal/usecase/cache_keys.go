package usecase

import "fmt"

// Cache keys embed every parameter that shapes the cached payload, so writers
// can invalidate whole families by prefix without knowing read-time params.

func dashboardCacheKey(userID string, daysBack, daysForward int) string {
	return fmt.Sprintf("dashboard:%s:%d:%d", userID, daysBack, daysForward)
}

func dashboardCachePrefix(userID string) string {
	return fmt.Sprintf("dashboard:%s:", userID)
}

func standingsCacheKey(leagueID, season string) string {
	return fmt.Sprintf("standings:%s:%s", leagueID, season)
}
