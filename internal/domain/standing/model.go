package standing

import (
	"fmt"
	"time"
)

// Standing is one league table row, keyed by (league, season, team).
type Standing struct {
	LeagueID     string
	Season       string
	TeamID       string
	Rank         int
	Played       int
	Win          int
	Draw         int
	Loss         int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Points       int
	UpdatedAt    time.Time
}

func (s Standing) Validate() error {
	if s.LeagueID == "" {
		return fmt.Errorf("standing league id is required")
	}
	if s.Season == "" {
		return fmt.Errorf("standing season is required")
	}
	if s.TeamID == "" {
		return fmt.Errorf("standing team id is required")
	}
	if s.Rank < 1 {
		return fmt.Errorf("standing rank must be positive")
	}

	return nil
}
