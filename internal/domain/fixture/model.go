package fixture

import (
	"fmt"
	"strings"
	"time"
)

// Status short codes follow the provider's vocabulary.
const (
	StatusNotStarted = "NS"
	StatusTBD        = "TBD"
	StatusFirstHalf  = "1H"
	StatusHalfTime   = "HT"
	StatusSecondHalf = "2H"
	StatusExtraTime  = "ET"
	StatusBreakTime  = "BT"
	StatusPenaltyRun = "P"
	StatusSuspended  = "SUSP"
	StatusInterrupt  = "INT"
	StatusLive       = "LIVE"
	StatusFullTime   = "FT"
	StatusAfterExtra = "AET"
	StatusPenalties  = "PEN"
	StatusPostponed  = "PST"
	StatusCancelled  = "CANC"
	StatusAbandoned  = "ABD"
	StatusAwarded    = "AWD"
	StatusWalkover   = "WO"
)

// Fixture is one scheduled or played match. Season is part of the fixture's
// identity: it is recorded on first sight and survives later league season
// rollovers.
type Fixture struct {
	ID         string
	ProviderID string
	LeagueID   string
	Season     string
	HomeTeamID string
	AwayTeamID string
	StartTime  time.Time
	Status     string
	HomeScore  *int
	AwayScore  *int
	UpdatedAt  time.Time
}

func (f Fixture) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fixture id is required")
	}
	if f.ProviderID == "" {
		return fmt.Errorf("fixture provider id is required")
	}
	if f.LeagueID == "" {
		return fmt.Errorf("fixture league id is required")
	}
	if f.HomeTeamID == "" || f.AwayTeamID == "" {
		return fmt.Errorf("fixture team ids are required")
	}
	if f.StartTime.IsZero() {
		return fmt.Errorf("fixture start time is required")
	}

	return nil
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFirstHalf, StatusHalfTime, StatusSecondHalf, StatusExtraTime,
		StatusBreakTime, StatusPenaltyRun, StatusSuspended, StatusInterrupt, StatusLive:
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFullTime, StatusAfterExtra, StatusPenalties:
		return true
	default:
		return false
	}
}

func IsCancelledLikeStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusPostponed, StatusCancelled, StatusAbandoned, StatusAwarded, StatusWalkover:
		return true
	default:
		return false
	}
}
