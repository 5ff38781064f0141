package postgres

import (
	"database/sql"
	"time"
)

type eventTableModel struct {
	ID         string         `db:"id"`
	FixtureID  string         `db:"fixture_id"`
	TeamID     sql.NullString `db:"team_id"`
	Type       string         `db:"type"`
	Minute     int            `db:"minute"`
	PlayerName string         `db:"player_name"`
	Payload    string         `db:"payload"`
	CreatedAt  time.Time      `db:"created_at"`
}

type eventInsertModel struct {
	ID         string         `db:"id"`
	FixtureID  string         `db:"fixture_id"`
	TeamID     sql.NullString `db:"team_id"`
	Type       string         `db:"type"`
	Minute     int            `db:"minute"`
	PlayerName string         `db:"player_name"`
	Payload    string         `db:"payload"`
	CreatedAt  time.Time      `db:"created_at"`
}
