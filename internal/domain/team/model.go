package team

import "fmt"

// Team is a club known to the hub. LeagueID is nullable because a team can
// arrive from the provider before its league does.
type Team struct {
	ID         string
	ProviderID string
	Name       string
	ShortCode  string
	LogoURL    *string
	LeagueID   *string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.ProviderID == "" {
		return fmt.Errorf("team provider id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
