package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	CORSAllowedOrigins           []string
	SwaggerEnabled               bool
	DBURL                        string
	DBDisablePreparedBinary      bool
	CacheTTL                     time.Duration
	MockDataDelay                time.Duration
	PublicBaseURL                string
	SupabaseURL                  string
	SupabaseAnonKey              string
	SupabaseAuthTimeout          time.Duration
	SupabaseTokenCacheTTL        time.Duration
	SupabaseCircuitEnabled       bool
	SupabaseCircuitFailureCount  int
	SupabaseCircuitOpenTimeout   time.Duration
	SupabaseCircuitHalfOpenMax   int
	InternalJobToken             string
	ReconcileWorkers             int
	PprofEnabled                 bool
	PprofAddr                    string
	UptraceEnabled               bool
	UptraceDSN                   string
	UptraceLogsEnabled           bool
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
	LogLevel                     logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	mockDataDelay, err := time.ParseDuration(getEnv("MOCK_DATA_DELAY", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MOCK_DATA_DELAY: %w", err)
	}
	if mockDataDelay < 0 {
		return Config{}, fmt.Errorf("MOCK_DATA_DELAY must be >= 0")
	}

	supabaseAuthTimeout, err := time.ParseDuration(getEnv("SUPABASE_AUTH_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_AUTH_TIMEOUT: %w", err)
	}
	if supabaseAuthTimeout <= 0 {
		return Config{}, fmt.Errorf("SUPABASE_AUTH_TIMEOUT must be > 0")
	}

	supabaseTokenCacheTTL, err := time.ParseDuration(getEnv("SUPABASE_TOKEN_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_TOKEN_CACHE_TTL: %w", err)
	}
	if supabaseTokenCacheTTL <= 0 {
		return Config{}, fmt.Errorf("SUPABASE_TOKEN_CACHE_TTL must be > 0")
	}

	supabaseCircuitEnabled, err := strconv.ParseBool(getEnv("SUPABASE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_CIRCUIT_ENABLED: %w", err)
	}

	supabaseCircuitFailureCount, err := getEnvAsInt("SUPABASE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if supabaseCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SUPABASE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}

	supabaseCircuitOpenTimeout, err := time.ParseDuration(getEnv("SUPABASE_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if supabaseCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SUPABASE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	supabaseCircuitHalfOpenMax, err := getEnvAsInt("SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if supabaseCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	reconcileWorkers, err := getEnvAsInt("RECONCILE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse RECONCILE_WORKERS: %w", err)
	}
	if reconcileWorkers < 1 {
		return Config{}, fmt.Errorf("RECONCILE_WORKERS must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
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

	supabaseURL := strings.TrimSpace(getEnv("SUPABASE_URL", ""))
	supabaseAnonKey := strings.TrimSpace(getEnv("SUPABASE_ANON_KEY", ""))
	if supabaseURL == "" {
		return Config{}, fmt.Errorf("SUPABASE_URL is required")
	}
	if supabaseAnonKey == "" {
		return Config{}, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "jogolindo-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:              swaggerEnabled,
		DBURL:                       strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:     dbDisablePreparedBinary,
		CacheTTL:                    cacheTTL,
		MockDataDelay:               mockDataDelay,
		PublicBaseURL:               strings.TrimRight(strings.TrimSpace(getEnv("PUBLIC_BASE_URL", "https://app.jogolindo.com.br")), "/"),
		SupabaseURL:                 supabaseURL,
		SupabaseAnonKey:             supabaseAnonKey,
		SupabaseAuthTimeout:         supabaseAuthTimeout,
		SupabaseTokenCacheTTL:       supabaseTokenCacheTTL,
		SupabaseCircuitEnabled:      supabaseCircuitEnabled,
		SupabaseCircuitFailureCount: supabaseCircuitFailureCount,
		SupabaseCircuitOpenTimeout:  supabaseCircuitOpenTimeout,
		SupabaseCircuitHalfOpenMax:  supabaseCircuitHalfOpenMax,
		InternalJobToken:            strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		ReconcileWorkers:            reconcileWorkers,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		UptraceLogsEnabled:          uptraceLogsEnabled,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		LogLevel:                    parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

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
