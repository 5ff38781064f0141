package footballdata

import (
	"context"
	"strings"
	"time"

	"github.com/myteamshq/sports-hub/internal/usecase"
)

// Mock serves a deterministic hard-coded dataset. It is the default provider
// when no API key is configured, which keeps local development and tests fully
// offline. Fixture kickoff times are derived from the clock so the dataset
// always contains one finished, one upcoming and one next-week match.
type Mock struct {
	now func() time.Time
}

func NewMock() *Mock {
	return &Mock{now: func() time.Time { return time.Now().UTC() }}
}

// NewMockWithClock pins the dataset's relative kickoff times to the given
// clock, which lets callers outside this package sync against a frozen now.
func NewMockWithClock(now func() time.Time) *Mock {
	if now == nil {
		return NewMock()
	}
	return &Mock{now: now}
}

var mockLeagues = []usecase.ExternalLeague{
	{ProviderID: "mock-39", Name: "Premier League", Country: "England", Season: "2024"},
	{ProviderID: "mock-140", Name: "La Liga", Country: "Spain", Season: "2024"},
}

var mockTeams = []usecase.ExternalTeam{
	{ProviderID: "mock-50", LeagueProviderID: "mock-39", Name: "Manchester City", ShortCode: "MCI"},
	{ProviderID: "mock-40", LeagueProviderID: "mock-39", Name: "Liverpool", ShortCode: "LIV"},
	{ProviderID: "mock-42", LeagueProviderID: "mock-39", Name: "Arsenal", ShortCode: "ARS"},
	{ProviderID: "mock-541", LeagueProviderID: "mock-140", Name: "Real Madrid", ShortCode: "RMA"},
	{ProviderID: "mock-529", LeagueProviderID: "mock-140", Name: "FC Barcelona", ShortCode: "BAR"},
	{ProviderID: "mock-530", LeagueProviderID: "mock-140", Name: "Atletico Madrid", ShortCode: "ATM"},
}

func (m *Mock) FetchLeagues(_ context.Context, country, season string) ([]usecase.ExternalLeague, error) {
	country = strings.TrimSpace(country)
	season = strings.TrimSpace(season)

	out := make([]usecase.ExternalLeague, 0, len(mockLeagues))
	for _, lg := range mockLeagues {
		if country != "" && !strings.EqualFold(lg.Country, country) {
			continue
		}
		if season != "" && lg.Season != season {
			continue
		}
		out = append(out, lg)
	}
	return out, nil
}

func (m *Mock) FetchTeams(_ context.Context, leagueProviderID string) ([]usecase.ExternalTeam, error) {
	out := make([]usecase.ExternalTeam, 0, len(mockTeams))
	for _, t := range mockTeams {
		if t.LeagueProviderID == leagueProviderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *Mock) SearchTeams(_ context.Context, query string, limit int) ([]usecase.ExternalTeam, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	out := make([]usecase.ExternalTeam, 0, limit)
	for _, t := range mockTeams {
		if !strings.Contains(strings.ToLower(t.Name), query) {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *Mock) FetchFixtures(_ context.Context, teamProviderID string, from, to time.Time) ([]usecase.ExternalFixture, error) {
	out := make([]usecase.ExternalFixture, 0, 3)
	for _, f := range m.fixtures() {
		if f.HomeTeamProviderID != teamProviderID && f.AwayTeamProviderID != teamProviderID {
			continue
		}
		if f.StartTime.Before(from) || f.StartTime.After(to) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (m *Mock) FetchEvents(_ context.Context, fixtureProviderID string) ([]usecase.ExternalEvent, error) {
	if fixtureProviderID != "mock-fix-1001" {
		return nil, nil
	}
	return []usecase.ExternalEvent{
		{FixtureProviderID: "mock-fix-1001", TeamProviderID: "mock-50", Type: "goal", Minute: 24, PlayerName: "Haaland"},
		{FixtureProviderID: "mock-fix-1001", TeamProviderID: "mock-50", Type: "goal", Minute: 58, PlayerName: "De Bruyne"},
		{FixtureProviderID: "mock-fix-1001", TeamProviderID: "mock-40", Type: "goal", Minute: 71, PlayerName: "Salah"},
	}, nil
}

func (m *Mock) FetchStandings(_ context.Context, leagueProviderID, season string) ([]usecase.ExternalStanding, error) {
	switch leagueProviderID {
	case "mock-39":
		return []usecase.ExternalStanding{
			{TeamProviderID: "mock-50", Rank: 1, Played: 28, Win: 20, Draw: 4, Loss: 4, GoalsFor: 65, GoalsAgainst: 28, GoalDiff: 37, Points: 64},
			{TeamProviderID: "mock-40", Rank: 2, Played: 28, Win: 19, Draw: 5, Loss: 4, GoalsFor: 60, GoalsAgainst: 30, GoalDiff: 30, Points: 62},
			{TeamProviderID: "mock-42", Rank: 3, Played: 28, Win: 18, Draw: 4, Loss: 6, GoalsFor: 55, GoalsAgainst: 32, GoalDiff: 23, Points: 58},
		}, nil
	case "mock-140":
		return []usecase.ExternalStanding{
			{TeamProviderID: "mock-541", Rank: 1, Played: 27, Win: 21, Draw: 3, Loss: 3, GoalsFor: 70, GoalsAgainst: 25, GoalDiff: 45, Points: 66},
			{TeamProviderID: "mock-529", Rank: 2, Played: 27, Win: 18, Draw: 4, Loss: 5, GoalsFor: 58, GoalsAgainst: 32, GoalDiff: 26, Points: 58},
			{TeamProviderID: "mock-530", Rank: 3, Played: 27, Win: 16, Draw: 5, Loss: 6, GoalsFor: 48, GoalsAgainst: 28, GoalDiff: 20, Points: 53},
		}, nil
	default:
		return nil, nil
	}
}

func (m *Mock) fixtures() []usecase.ExternalFixture {
	now := m.now()
	yesterday := atClock(now.AddDate(0, 0, -1), 15, 0)
	tomorrow := atClock(now.AddDate(0, 0, 1), 17, 30)
	nextWeek := atClock(now.AddDate(0, 0, 7), 21, 0)

	homeGoals, awayGoals := 2, 1
	return []usecase.ExternalFixture{
		{
			ProviderID:         "mock-fix-1001",
			LeagueProviderID:   "mock-39",
			Season:             "2024",
			HomeTeamProviderID: "mock-50",
			AwayTeamProviderID: "mock-40",
			StartTime:          yesterday,
			Status:             "FT",
			HomeScore:          &homeGoals,
			AwayScore:          &awayGoals,
		},
		{
			ProviderID:         "mock-fix-1002",
			LeagueProviderID:   "mock-39",
			Season:             "2024",
			HomeTeamProviderID: "mock-42",
			AwayTeamProviderID: "mock-50",
			StartTime:          tomorrow,
			Status:             "NS",
		},
		{
			ProviderID:         "mock-fix-1003",
			LeagueProviderID:   "mock-140",
			Season:             "2024",
			HomeTeamProviderID: "mock-541",
			AwayTeamProviderID: "mock-529",
			StartTime:          nextWeek,
			Status:             "NS",
		},
	}
}

func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}
