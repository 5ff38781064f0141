package usecase

import (
	"context"
	"time"
)

// FootballDataProvider is the capability contract every football data source
// implements. Provider ids are opaque strings owned by the upstream source;
// implementations must never invent or rewrite them.
type FootballDataProvider interface {
	// FetchLeagues returns leagues, optionally narrowed by country and season.
	// Empty filter values mean "all".
	FetchLeagues(ctx context.Context, country, season string) ([]ExternalLeague, error)
	FetchTeams(ctx context.Context, leagueProviderID string) ([]ExternalTeam, error)
	SearchTeams(ctx context.Context, query string, limit int) ([]ExternalTeam, error)
	// FetchFixtures returns fixtures for the team (home or away) with kickoff
	// inside [from, to] inclusive.
	FetchFixtures(ctx context.Context, teamProviderID string, from, to time.Time) ([]ExternalFixture, error)
	FetchEvents(ctx context.Context, fixtureProviderID string) ([]ExternalEvent, error)
	FetchStandings(ctx context.Context, leagueProviderID, season string) ([]ExternalStanding, error)
}

type ExternalLeague struct {
	ProviderID string
	Name       string
	Country    string
	Season     string
}

type ExternalTeam struct {
	ProviderID       string
	LeagueProviderID string
	Name             string
	ShortCode        string
	LogoURL          string
}

type ExternalFixture struct {
	ProviderID         string
	LeagueProviderID   string
	Season             string
	HomeTeamProviderID string
	AwayTeamProviderID string
	StartTime          time.Time
	Status             string
	HomeScore          *int
	AwayScore          *int
}

type ExternalEvent struct {
	FixtureProviderID string
	TeamProviderID    string
	Type              string
	Minute            int
	PlayerName        string
	// Payload carries whatever extra detail the upstream source attached to
	// the event, untouched. Nil when the source sent nothing.
	Payload map[string]any
}

type ExternalStanding struct {
	TeamProviderID string
	Rank           int
	Played         int
	Win            int
	Draw           int
	Loss           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDiff       int
	Points         int
}
