package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/myteamshq/sports-hub/internal/domain/event"
	qb "github.com/myteamshq/sports-hub/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Append inserts the batch inside one transaction. The table is append-only;
// rows are never updated or deduplicated here.
func (r *EventRepository) Append(ctx context.Context, events []event.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx append events: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, e := range events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("validate event: %w", err)
		}

		// The payload column is jsonb; reject malformed payloads before
		// the database does.
		payload := e.Payload
		if payload == "" {
			payload = "{}"
		} else if !jsoniter.Valid([]byte(payload)) {
			return fmt.Errorf("append event id=%s: payload is not valid json", e.ID)
		}

		insertModel := eventInsertModel{
			ID:         e.ID,
			FixtureID:  e.FixtureID,
			TeamID:     nullableString(e.TeamID),
			Type:       e.Type,
			Minute:     e.Minute,
			PlayerName: e.PlayerName,
			Payload:    payload,
			CreatedAt:  e.CreatedAt.UTC(),
		}

		query, args, err := qb.InsertModel("events", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert event query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("append event id=%s fixture_id=%s: %w", e.ID, e.FixtureID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append events tx: %w", err)
	}
	return nil
}

func (r *EventRepository) ListByFixture(ctx context.Context, fixtureID string) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events fixture_id=%s: %w", fixtureID, err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, event.Event{
			ID:         row.ID,
			FixtureID:  row.FixtureID,
			TeamID:     stringPtr(row.TeamID),
			Type:       row.Type,
			Minute:     row.Minute,
			PlayerName: row.PlayerName,
			Payload:    row.Payload,
			CreatedAt:  row.CreatedAt.UTC(),
		})
	}
	return out, nil
}
