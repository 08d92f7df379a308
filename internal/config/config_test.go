package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_SupabaseRequired(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without SUPABASE_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "jogolindo-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "jogolindo-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Run("default wildcard", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_CacheTTLParsing(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}

func TestLoad_MockDataDelayParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults to zero", func(t *testing.T) {
		t.Setenv("MOCK_DATA_DELAY", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.MockDataDelay != 0 {
			t.Fatalf("unexpected default mock data delay: %s", cfg.MockDataDelay)
		}
	})

	t.Run("explicit value", func(t *testing.T) {
		t.Setenv("MOCK_DATA_DELAY", "800ms")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.MockDataDelay != 800*time.Millisecond {
			t.Fatalf("unexpected mock data delay: %s", cfg.MockDataDelay)
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		t.Setenv("MOCK_DATA_DELAY", "-1s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative MOCK_DATA_DELAY")
		}
	})
}

func TestLoad_SupabaseCircuitDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.SupabaseCircuitEnabled {
		t.Fatalf("expected circuit enabled by default")
	}
	if cfg.SupabaseCircuitFailureCount != 5 {
		t.Fatalf("unexpected failure count: %d", cfg.SupabaseCircuitFailureCount)
	}
	if cfg.SupabaseCircuitOpenTimeout != 15*time.Second {
		t.Fatalf("unexpected open timeout: %s", cfg.SupabaseCircuitOpenTimeout)
	}
	if cfg.SupabaseCircuitHalfOpenMax != 2 {
		t.Fatalf("unexpected half open max: %d", cfg.SupabaseCircuitHalfOpenMax)
	}
}

func TestLoad_PublicBaseURLTrimsTrailingSlash(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PUBLIC_BASE_URL", "https://app.jogolindo.com.br/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PublicBaseURL != "https://app.jogolindo.com.br" {
		t.Fatalf("unexpected public base url: %q", cfg.PublicBaseURL)
	}
}

func TestLoad_ReconcileWorkersValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RECONCILE_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for RECONCILE_WORKERS=0")
	}
}
