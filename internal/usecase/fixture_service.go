package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/myteamshq/sports-hub/internal/domain/event"
	"github.com/myteamshq/sports-hub/internal/domain/fixture"
	"github.com/myteamshq/sports-hub/internal/domain/team"
)

// FixtureService serves fixture and event reads.
type FixtureService struct {
	fixtureRepo fixture.Repository
	eventRepo   event.Repository
	teamRepo    team.Repository
}

func NewFixtureService(
	fixtureRepo fixture.Repository,
	eventRepo event.Repository,
	teamRepo team.Repository,
) *FixtureService {
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
	}
}

func (s *FixtureService) ListByTeam(ctx context.Context, teamID string, from, to time.Time) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: window end precedes its start", ErrInvalidInput)
	}

	if _, ok, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("get team id=%s: %w", teamID, err)
	} else if !ok {
		return nil, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	fixtures, err := s.fixtureRepo.ListByTeam(ctx, teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list fixtures team=%s: %w", teamID, err)
	}
	return fixtures, nil
}

func (s *FixtureService) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetByID")
	defer span.End()

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	fx, ok, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture id=%s: %w", fixtureID, err)
	}
	if !ok {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture %s", ErrNotFound, fixtureID)
	}
	return fx, nil
}

func (s *FixtureService) ListEvents(ctx context.Context, fixtureID string) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListEvents")
	defer span.End()

	if _, err := s.GetByID(ctx, fixtureID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByFixture(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("list events fixture=%s: %w", fixtureID, err)
	}
	return events, nil
}
