package postgres

import "time"

type standingTableModel struct {
	LeagueID     string    `db:"league_id"`
	Season       string    `db:"season"`
	TeamID       string    `db:"team_id"`
	Rank         int       `db:"rank"`
	Played       int       `db:"played"`
	Win          int       `db:"win"`
	Draw         int       `db:"draw"`
	Loss         int       `db:"loss"`
	GoalsFor     int       `db:"goals_for"`
	GoalsAgainst int       `db:"goals_against"`
	GoalDiff     int       `db:"goal_diff"`
	Points       int       `db:"points"`
	UpdatedAt    time.Time `db:"updated_at"`
}
