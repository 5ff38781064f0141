package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID         string         `db:"id"`
	ProviderID string         `db:"provider_id"`
	Name       string         `db:"name"`
	ShortCode  string         `db:"short_code"`
	LogoURL    sql.NullString `db:"logo_url"`
	LeagueID   sql.NullString `db:"league_id"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

type teamInsertModel struct {
	ID         string         `db:"id"`
	ProviderID string         `db:"provider_id"`
	Name       string         `db:"name"`
	ShortCode  string         `db:"short_code"`
	LogoURL    sql.NullString `db:"logo_url"`
	LeagueID   sql.NullString `db:"league_id"`
}
