package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/myteamshq/sports-hub/external/footballdata"
	"github.com/myteamshq/sports-hub/internal/config"
	"github.com/myteamshq/sports-hub/internal/domain/event"
	"github.com/myteamshq/sports-hub/internal/domain/fixture"
	"github.com/myteamshq/sports-hub/internal/domain/follow"
	"github.com/myteamshq/sports-hub/internal/domain/league"
	"github.com/myteamshq/sports-hub/internal/domain/standing"
	"github.com/myteamshq/sports-hub/internal/domain/team"
	"github.com/myteamshq/sports-hub/internal/infrastructure/account/authsvc"
	rediscache "github.com/myteamshq/sports-hub/internal/infrastructure/cache/redis"
	"github.com/myteamshq/sports-hub/internal/infrastructure/repository/memory"
	"github.com/myteamshq/sports-hub/internal/infrastructure/repository/postgres"
	"github.com/myteamshq/sports-hub/internal/interfaces/httpapi"
	"github.com/myteamshq/sports-hub/internal/platform/cache"
	idgen "github.com/myteamshq/sports-hub/internal/platform/id"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
	"github.com/myteamshq/sports-hub/internal/platform/resilience"
	"github.com/myteamshq/sports-hub/internal/usecase"
)

// Runtime holds the wired application: the HTTP server for cmd/api and the
// sync orchestrator for cmd/worker, plus the resources both need closed.
type Runtime struct {
	Server           *http.Server
	SyncOrchestrator *usecase.SyncOrchestratorService

	closers []func() error
}

func (r *Runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		_ = r.closers[i]()
	}
}

type repositories struct {
	leagues   league.Repository
	teams     team.Repository
	fixtures  fixture.Repository
	events    event.Repository
	standings standing.Repository
	follows   follow.Repository
}

func NewRuntime(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}

	runtime := &Runtime{}

	repos, err := buildRepositories(cfg, logger, runtime)
	if err != nil {
		return nil, err
	}

	cacheStore := buildCache(cfg, logger, runtime)
	provider := buildProvider(cfg, logger)

	catalogSvc := usecase.NewCatalogService(repos.leagues, repos.teams, provider)
	fixtureSvc := usecase.NewFixtureService(repos.fixtures, repos.events, repos.teams)
	standingSvc := usecase.NewStandingService(repos.standings, cacheStore, cfg.StandingsCacheTTL, logger)
	dashboardSvc := usecase.NewDashboardService(repos.follows, repos.teams, repos.fixtures, cacheStore, cfg.DashboardCacheTTL, logger)
	followSvc := usecase.NewFollowService(repos.follows, repos.teams, cacheStore)
	syncSvc := usecase.NewSyncService(
		provider,
		repos.leagues,
		repos.teams,
		repos.fixtures,
		repos.events,
		repos.standings,
		repos.follows,
		cacheStore,
		idgen.NewUUIDGenerator(),
		logger,
	)
	orchestrator := usecase.NewSyncOrchestratorService(syncSvc, repos.leagues, repos.teams, repos.fixtures, logger)

	verifier := authsvc.NewClient(authsvc.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.AuthTimeout},
		BaseURL:        cfg.AuthBaseURL,
		IntrospectPath: cfg.AuthIntrospectPath,
		CacheTTL:       cfg.AuthCacheTTL,
		Logger:         logger,
	})

	handler := httpapi.NewHandler(catalogSvc, fixtureSvc, standingSvc, dashboardSvc, followSvc, orchestrator, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalSyncToken)

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	runtime.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	runtime.SyncOrchestrator = orchestrator

	return runtime, nil
}

// buildRepositories prefers postgres and falls back to in-memory stores when
// DB_URL is unset, which keeps local development dependency-free.
func buildRepositories(cfg config.Config, logger *logging.Logger, runtime *Runtime) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Warn("DB_URL is not set, using in-memory repositories")
		return repositories{
			leagues:   memory.NewLeagueRepository(),
			teams:     memory.NewTeamRepository(),
			fixtures:  memory.NewFixtureRepository(),
			events:    memory.NewEventRepository(),
			standings: memory.NewStandingRepository(),
			follows:   memory.NewFollowRepository(),
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, fmt.Errorf("open database: %w", err)
	}
	runtime.closers = append(runtime.closers, db.Close)

	return repositories{
		leagues:   postgres.NewLeagueRepository(db),
		teams:     postgres.NewTeamRepository(db),
		fixtures:  postgres.NewFixtureRepository(db),
		events:    postgres.NewEventRepository(db),
		standings: postgres.NewStandingRepository(db),
		follows:   postgres.NewFollowRepository(db),
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func buildCache(cfg config.Config, logger *logging.Logger, runtime *Runtime) cache.Cache {
	if !cfg.RedisEnabled {
		return cache.NewStore()
	}

	store, err := rediscache.NewStore(rediscache.Config{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		KeyNamespace: cfg.RedisKeyNamespace,
	}, logger)
	if err != nil {
		logger.Error("redis unavailable, falling back to in-process cache", "addr", cfg.RedisAddr, "error", err)
		return cache.NewStore()
	}
	runtime.closers = append(runtime.closers, store.Close)

	return store
}

func buildProvider(cfg config.Config, logger *logging.Logger) usecase.FootballDataProvider {
	return footballdata.NewFromConfig(footballdata.FactoryConfig{
		Provider:       cfg.FootballDataProvider,
		APIKey:         cfg.FootballDataAPIKey,
		BaseURL:        cfg.FootballDataBaseURL,
		Timeout:        cfg.FootballDataTimeout,
		MaxRetries:     cfg.FootballDataMaxRetries,
		RequestsPerSec: cfg.FootballDataRequestsPerSec,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
		},
	})
}
