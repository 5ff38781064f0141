package league

import "fmt"

// League is a football competition tracked by the hub. ProviderID is the
// upstream data provider's identifier and the only correlation key used
// during sync.
type League struct {
	ID         string
	ProviderID string
	Name       string
	Country    string
	Season     string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.ProviderID == "" {
		return fmt.Errorf("league provider id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
