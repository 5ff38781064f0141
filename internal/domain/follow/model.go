package follow

import (
	"fmt"
	"time"
)

// Follow links a user to a team they track on their dashboard.
type Follow struct {
	UserID    string
	TeamID    string
	CreatedAt time.Time
}

func (f Follow) Validate() error {
	if f.UserID == "" {
		return fmt.Errorf("follow user id is required")
	}
	if f.TeamID == "" {
		return fmt.Errorf("follow team id is required")
	}

	return nil
}
