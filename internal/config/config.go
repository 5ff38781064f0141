package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/myteamshq/sports-hub/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                            string
	ServiceName                       string
	ServiceVersion                    string
	HTTPAddr                          string
	DBURL                             string
	DBDisablePreparedBinary           bool
	RedisEnabled                      bool
	RedisAddr                         string
	RedisPassword                     string
	RedisDB                           int
	RedisKeyNamespace                 string
	CacheTTL                          time.Duration
	DashboardCacheTTL                 time.Duration
	StandingsCacheTTL                 time.Duration
	CORSAllowedOrigins                []string
	ReadTimeout                       time.Duration
	WriteTimeout                      time.Duration
	PprofEnabled                      bool
	PprofAddr                         string
	AuthBaseURL                       string
	AuthIntrospectPath                string
	AuthTimeout                       time.Duration
	AuthCacheTTL                      time.Duration
	UptraceEnabled                    bool
	UptraceDSN                        string
	UptraceLogsEnabled                bool
	UptraceCaptureRequestBody         bool
	UptraceRequestBodyMaxBytes        int
	BetterStackEnabled                bool
	BetterStackEndpoint               string
	BetterStackToken                  string
	BetterStackTimeout                time.Duration
	BetterStackMinLevel               logging.Level
	PyroscopeEnabled                  bool
	PyroscopeServerAddress            string
	PyroscopeAppName                  string
	PyroscopeAuthToken                string
	PyroscopeBasicAuthUser            string
	PyroscopeBasicAuthPassword        string
	PyroscopeUploadRate               time.Duration
	FootballDataProvider              string
	FootballDataBaseURL               string
	FootballDataAPIKey                string
	FootballDataTimeout               time.Duration
	FootballDataMaxRetries            int
	FootballDataRequestsPerSec        float64
	FootballDataCircuitEnabled        bool
	FootballDataCircuitFailureCount   int
	FootballDataCircuitOpenTimeout    time.Duration
	FootballDataCircuitHalfOpenMaxReq int
	InternalSyncToken                 string
	SyncFixturesInterval              time.Duration
	SyncStandingsInterval             time.Duration
	SyncEventsInterval                time.Duration
	SyncHoursForward                  int
	LogLevel                          logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}
	uptraceCaptureRequestBody, err := strconv.ParseBool(getEnv("UPTRACE_CAPTURE_REQUEST_BODY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_CAPTURE_REQUEST_BODY: %w", err)
	}
	uptraceRequestBodyMaxBytes, err := getEnvAsInt("UPTRACE_REQUEST_BODY_MAX_BYTES", 8192)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_REQUEST_BODY_MAX_BYTES: %w", err)
	}
	if uptraceRequestBodyMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPTRACE_REQUEST_BODY_MAX_BYTES must be > 0")
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := time.ParseDuration(getEnv("BETTERSTACK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_TIMEOUT: %w", err)
	}
	if betterStackTimeout <= 0 {
		return Config{}, fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}
	betterStackMinLevel := parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error"))

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	provider := strings.ToLower(strings.TrimSpace(getEnv("FOOTBALL_DATA_PROVIDER", "mock")))
	switch provider {
	case "mock", "api_football":
	default:
		return Config{}, fmt.Errorf("invalid FOOTBALL_DATA_PROVIDER %q: valid values are mock, api_football", provider)
	}
	footballTimeout, err := time.ParseDuration(getEnv("FOOTBALL_DATA_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_TIMEOUT: %w", err)
	}
	if footballTimeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_TIMEOUT must be > 0")
	}
	footballMaxRetries, err := getEnvAsInt("FOOTBALL_DATA_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_MAX_RETRIES: %w", err)
	}
	if footballMaxRetries < 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_MAX_RETRIES must be >= 0")
	}
	footballRPS, err := getEnvAsFloat("FOOTBALL_DATA_REQUESTS_PER_SEC", 0.15)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_REQUESTS_PER_SEC: %w", err)
	}
	if footballRPS <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_REQUESTS_PER_SEC must be > 0")
	}
	footballCircuitEnabled, err := strconv.ParseBool(getEnv("FOOTBALL_DATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_ENABLED: %w", err)
	}
	footballCircuitFailureCount, err := getEnvAsInt("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if footballCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	footballCircuitOpenTimeout, err := time.ParseDuration(getEnv("FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if footballCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	footballCircuitHalfOpenMaxReq, err := getEnvAsInt("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if footballCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	footballAPIKey := strings.TrimSpace(getEnv("FOOTBALL_DATA_API_KEY", ""))
	if provider == "api_football" && footballAPIKey == "" {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_API_KEY is required when FOOTBALL_DATA_PROVIDER=api_football")
	}

	redisEnabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REDIS_ENABLED: %w", err)
	}
	redisAddr := strings.TrimSpace(getEnv("REDIS_ADDR", "localhost:6379"))
	if redisEnabled && redisAddr == "" {
		return Config{}, fmt.Errorf("REDIS_ADDR is required when REDIS_ENABLED=true")
	}
	redisDB, err := getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse REDIS_DB: %w", err)
	}
	if redisDB < 0 {
		return Config{}, fmt.Errorf("REDIS_DB must be >= 0")
	}

	syncFixturesInterval, err := time.ParseDuration(getEnv("SYNC_FIXTURES_INTERVAL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_FIXTURES_INTERVAL: %w", err)
	}
	if syncFixturesInterval <= 0 {
		return Config{}, fmt.Errorf("SYNC_FIXTURES_INTERVAL must be > 0")
	}

	syncStandingsInterval, err := time.ParseDuration(getEnv("SYNC_STANDINGS_INTERVAL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_STANDINGS_INTERVAL: %w", err)
	}
	if syncStandingsInterval <= 0 {
		return Config{}, fmt.Errorf("SYNC_STANDINGS_INTERVAL must be > 0")
	}

	syncEventsInterval, err := time.ParseDuration(getEnv("SYNC_EVENTS_INTERVAL", "1m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_EVENTS_INTERVAL: %w", err)
	}
	if syncEventsInterval <= 0 {
		return Config{}, fmt.Errorf("SYNC_EVENTS_INTERVAL must be > 0")
	}

	syncHoursForward, err := getEnvAsInt("SYNC_HOURS_FORWARD", 72)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_HOURS_FORWARD: %w", err)
	}
	if syncHoursForward < 1 {
		return Config{}, fmt.Errorf("SYNC_HOURS_FORWARD must be >= 1")
	}

	cfg := Config{
		AppEnv:                            appEnv,
		ServiceName:                       getEnv("APP_SERVICE_NAME", "sports-hub-api"),
		ServiceVersion:                    getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                          getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                             getEnv("DB_URL", ""),
		DBDisablePreparedBinary:           true,
		RedisEnabled:                      redisEnabled,
		RedisAddr:                         redisAddr,
		RedisPassword:                     strings.TrimSpace(getEnv("REDIS_PASSWORD", "")),
		RedisDB:                           redisDB,
		RedisKeyNamespace:                 strings.TrimSpace(getEnv("REDIS_KEY_NAMESPACE", "sportshub")),
		CORSAllowedOrigins:                splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:                      pprofEnabled,
		PprofAddr:                         pprofAddr,
		AuthBaseURL:                       getEnv("AUTH_BASE_URL", "http://localhost:8081"),
		AuthIntrospectPath:                getEnv("AUTH_INTROSPECT_PATH", "/v1/auth/introspect"),
		UptraceEnabled:                    uptraceEnabled,
		UptraceDSN:                        uptraceDSN,
		UptraceLogsEnabled:                uptraceLogsEnabled,
		UptraceCaptureRequestBody:         uptraceCaptureRequestBody,
		UptraceRequestBodyMaxBytes:        uptraceRequestBodyMaxBytes,
		BetterStackEnabled:                betterStackEnabled,
		BetterStackEndpoint:               betterStackEndpoint,
		BetterStackToken:                  strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:                betterStackTimeout,
		BetterStackMinLevel:               betterStackMinLevel,
		PyroscopeEnabled:                  pyroscopeEnabled,
		PyroscopeServerAddress:            pyroscopeServerAddress,
		PyroscopeAuthToken:                strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:            strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:               pyroscopeUploadRate,
		FootballDataProvider:              provider,
		FootballDataBaseURL:               strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", "https://v3.football.api-sports.io")),
		FootballDataAPIKey:                footballAPIKey,
		FootballDataTimeout:               footballTimeout,
		FootballDataMaxRetries:            footballMaxRetries,
		FootballDataRequestsPerSec:        footballRPS,
		FootballDataCircuitEnabled:        footballCircuitEnabled,
		FootballDataCircuitFailureCount:   footballCircuitFailureCount,
		FootballDataCircuitOpenTimeout:    footballCircuitOpenTimeout,
		FootballDataCircuitHalfOpenMaxReq: footballCircuitHalfOpenMaxReq,
		InternalSyncToken:                 strings.TrimSpace(getEnv("INTERNAL_SYNC_TOKEN", "")),
		SyncFixturesInterval:              syncFixturesInterval,
		SyncStandingsInterval:             syncStandingsInterval,
		SyncEventsInterval:                syncEventsInterval,
		SyncHoursForward:                  syncHoursForward,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheTTL = cacheTTL

	dashboardCacheTTL, err := time.ParseDuration(getEnv("DASHBOARD_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DASHBOARD_CACHE_TTL: %w", err)
	}
	if dashboardCacheTTL <= 0 {
		return Config{}, fmt.Errorf("DASHBOARD_CACHE_TTL must be > 0")
	}
	cfg.DashboardCacheTTL = dashboardCacheTTL

	standingsCacheTTL, err := time.ParseDuration(getEnv("STANDINGS_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STANDINGS_CACHE_TTL: %w", err)
	}
	if standingsCacheTTL <= 0 {
		return Config{}, fmt.Errorf("STANDINGS_CACHE_TTL must be > 0")
	}
	cfg.StandingsCacheTTL = standingsCacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	authTimeout, err := time.ParseDuration(getEnv("AUTH_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_TIMEOUT: %w", err)
	}

	authCacheTTL, err := time.ParseDuration(getEnv("AUTH_CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_CACHE_TTL: %w", err)
	}
	if authCacheTTL <= 0 {
		return Config{}, fmt.Errorf("AUTH_CACHE_TTL must be > 0")
	}

	logLevel := parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.AuthTimeout = authTimeout
	cfg.AuthCacheTTL = authCacheTTL
	cfg.LogLevel = logLevel

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
