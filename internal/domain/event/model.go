package event

import (
	"fmt"
	"time"
)

// Event is one in-match occurrence (goal, card, substitution). Rows are
// append-only: re-syncing a fixture appends again, duplicates and all.
type Event struct {
	ID         string
	FixtureID  string
	TeamID     *string
	Type       string
	Minute     int
	PlayerName string
	Payload    string
	CreatedAt  time.Time
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.FixtureID == "" {
		return fmt.Errorf("event fixture id is required")
	}
	if e.Type == "" {
		return fmt.Errorf("event type is required")
	}

	return nil
}
