package gotrue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/jogolindo/jogolindo-api/internal/domain/user"
	"github.com/jogolindo/jogolindo-api/internal/platform/resilience"
	"github.com/jogolindo/jogolindo-api/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientVerifyAccessToken_SendsBearerAndParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
			t.Errorf("unexpected authorization header: %s", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("unexpected apikey header: %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{
			"id":    "user-123",
			"email": "neymar@example.com",
			"user_metadata": map[string]any{
				"name":            "Neymar Jr.",
				"role":            "atleta",
				"profile_picture": "https://example.com/pic.jpg",
				"position":        "forward",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:        srv.URL,
		APIKey:         "anon-key",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, discardLogger())

	principal, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}

	if principal.ID != "user-123" {
		t.Fatalf("unexpected user id: %s", principal.ID)
	}
	if principal.Email != "neymar@example.com" {
		t.Fatalf("unexpected email: %s", principal.Email)
	}
	if principal.Role != user.RoleAthlete {
		t.Fatalf("unexpected role: %s", principal.Role)
	}
	if principal.Position != "forward" {
		t.Fatalf("unexpected position: %s", principal.Position)
	}
}

func TestClientVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{
		BaseURL:        "http://localhost:1",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, discardLogger())

	_, err := client.VerifyAccessToken(context.Background(), "  ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_RejectedToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:        srv.URL,
		APIKey:         "anon-key",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, discardLogger())

	_, err := client.VerifyAccessToken(context.Background(), "expired-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_UnknownRoleFallsBackToAthlete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{
			"id":            "user-456",
			"email":         "someone@example.com",
			"user_metadata": map[string]any{"role": "coach"},
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:        srv.URL,
		APIKey:         "anon-key",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, discardLogger())

	principal, err := client.VerifyAccessToken(context.Background(), "token-xyz")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if principal.Role != user.RoleAthlete {
		t.Fatalf("unexpected role fallback: %s", principal.Role)
	}
}

func TestClientVerifyAccessToken_CachesVerifiedTokens(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{
			"id":    "user-cache",
			"email": "cache@example.com",
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:        srv.URL,
		APIKey:         "anon-key",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, discardLogger())

	for i := 0; i < 3; i++ {
		principal, err := client.VerifyAccessToken(context.Background(), "cached-token")
		if err != nil {
			t.Fatalf("verify token failed: %v", err)
		}
		if principal.ID != "user-cache" {
			t.Fatalf("unexpected user id: %s", principal.ID)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected one upstream call with cache, got %d", calls.Load())
	}
}

func TestClientVerifyAccessToken_CircuitOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL: srv.URL,
		APIKey:  "anon-key",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
		},
	}, discardLogger())

	// Distinct tokens bypass the verified-token cache.
	for _, token := range []string{"t1", "t2"} {
		if _, err := client.VerifyAccessToken(context.Background(), token); err == nil {
			t.Fatal("expected error from failing upstream")
		}
	}

	_, err := client.VerifyAccessToken(context.Background(), "t3")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once circuit opened, got %v", err)
	}
}
