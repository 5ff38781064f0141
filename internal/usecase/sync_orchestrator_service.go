package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/myteamshq/sports-hub/internal/domain/fixture"
	"github.com/myteamshq/sports-hub/internal/domain/league"
	"github.com/myteamshq/sports-hub/internal/domain/team"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
)

const (
	SyncScopeFixtures  = "fixtures"
	SyncScopeStandings = "standings"
	SyncScopeEvents    = "events"

	defaultSyncHoursForward = 72
	maxSyncWorkers          = 4
)

type SyncRunInput struct {
	Scope        string
	HoursForward int
	MaxWorkers   int
}

type SyncRunResult struct {
	Scope       string `json:"scope"`
	TargetCount int    `json:"target_count"`
	RecordCount int    `json:"record_count"`
	FailedCount int    `json:"failed_count"`
	WorkerCount int    `json:"worker_count"`
	DurationMs  int64  `json:"duration_ms"`
}

// SyncOrchestratorService fans one sync scope out over every matching
// target: all teams for fixtures, all leagues for standings, all live
// fixtures for events. Per-target failures are logged and counted, never
// fatal to the run.
type SyncOrchestratorService struct {
	sync        *SyncService
	leagueRepo  league.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	logger      *logging.Logger
	now         func() time.Time
}

func NewSyncOrchestratorService(
	syncService *SyncService,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	logger *logging.Logger,
) *SyncOrchestratorService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SyncOrchestratorService{
		sync:        syncService,
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *SyncOrchestratorService) Run(ctx context.Context, input SyncRunInput) (SyncRunResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncOrchestratorService.Run")
	defer span.End()

	if s.sync == nil {
		return SyncRunResult{}, fmt.Errorf("%w: sync service is not configured", ErrDependencyUnavailable)
	}

	scope := strings.ToLower(strings.TrimSpace(input.Scope))
	hoursForward := input.HoursForward
	if hoursForward <= 0 {
		hoursForward = defaultSyncHoursForward
	}

	var tasks []func(context.Context) (int, error)
	var err error
	switch scope {
	case SyncScopeFixtures:
		tasks, err = s.fixtureTasks(ctx, hoursForward)
	case SyncScopeStandings:
		tasks, err = s.standingsTasks(ctx)
	case SyncScopeEvents:
		tasks, err = s.eventTasks(ctx)
	default:
		return SyncRunResult{}, fmt.Errorf("%w: unsupported sync scope %q", ErrInvalidInput, input.Scope)
	}
	if err != nil {
		return SyncRunResult{}, err
	}

	workerCount := normalizeSyncWorkerCount(input.MaxWorkers, len(tasks))
	result := SyncRunResult{
		Scope:       scope,
		TargetCount: len(tasks),
		WorkerCount: workerCount,
	}
	if len(tasks) == 0 {
		return result, nil
	}

	start := s.now()
	var recordCount atomic.Int64
	var failedCount atomic.Int64

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return SyncRunResult{}, fmt.Errorf("create sync worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			count, err := task(ctx)
			if err != nil {
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "sync task failed",
					"scope", scope,
					"error", err,
				)
				return
			}
			recordCount.Add(int64(count))
		}); err != nil {
			workers.Done()
			return SyncRunResult{}, fmt.Errorf("submit sync task: %w", err)
		}
	}
	workers.Wait()

	result.RecordCount = int(recordCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.DurationMs = time.Since(start).Milliseconds()

	s.logger.InfoContext(ctx, "sync run finished",
		"scope", scope,
		"targets", result.TargetCount,
		"records", result.RecordCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *SyncOrchestratorService) fixtureTasks(ctx context.Context, hoursForward int) ([]func(context.Context) (int, error), error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams for fixture sync: %w", err)
	}

	tasks := make([]func(context.Context) (int, error), 0, len(teams))
	for _, tm := range teams {
		providerID := tm.ProviderID
		tasks = append(tasks, func(ctx context.Context) (int, error) {
			return s.sync.SyncFixtures(ctx, providerID, hoursForward)
		})
	}
	return tasks, nil
}

func (s *SyncOrchestratorService) standingsTasks(ctx context.Context) ([]func(context.Context) (int, error), error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues for standings sync: %w", err)
	}

	tasks := make([]func(context.Context) (int, error), 0, len(leagues))
	for _, lg := range leagues {
		providerID := lg.ProviderID
		season := lg.Season
		tasks = append(tasks, func(ctx context.Context) (int, error) {
			return s.sync.SyncStandings(ctx, providerID, season)
		})
	}
	return tasks, nil
}

func (s *SyncOrchestratorService) eventTasks(ctx context.Context) ([]func(context.Context) (int, error), error) {
	live, err := s.fixtureRepo.ListLive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list live fixtures for event sync: %w", err)
	}

	tasks := make([]func(context.Context) (int, error), 0, len(live))
	for _, fx := range live {
		providerID := fx.ProviderID
		tasks = append(tasks, func(ctx context.Context) (int, error) {
			return s.sync.SyncEvents(ctx, providerID)
		})
	}
	return tasks, nil
}

func normalizeSyncWorkerCount(value, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = maxSyncWorkers
	}
	if value > maxSyncWorkers {
		value = maxSyncWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
