package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	ID         string        `db:"id"`
	ProviderID string        `db:"provider_id"`
	LeagueID   string        `db:"league_id"`
	Season     string        `db:"season"`
	HomeTeamID string        `db:"home_team_id"`
	AwayTeamID string        `db:"away_team_id"`
	StartTime  time.Time     `db:"start_time"`
	Status     string        `db:"status"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

type fixtureInsertModel struct {
	ID         string        `db:"id"`
	ProviderID string        `db:"provider_id"`
	LeagueID   string        `db:"league_id"`
	Season     string        `db:"season"`
	HomeTeamID string        `db:"home_team_id"`
	AwayTeamID string        `db:"away_team_id"`
	StartTime  time.Time     `db:"start_time"`
	Status     string        `db:"status"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	UpdatedAt  time.Time     `db:"updated_at"`
}
