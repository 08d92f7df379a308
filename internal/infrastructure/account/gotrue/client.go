package gotrue

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jogolindo/jogolindo-api/internal/domain/user"
	"github.com/jogolindo/jogolindo-api/internal/platform/cache"
	"github.com/jogolindo/jogolindo-api/internal/platform/resilience"
	"github.com/jogolindo/jogolindo-api/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

var errGoTrueTransient = crerr.New("gotrue transient failure")

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	CacheTTL       time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client verifies Supabase GoTrue access tokens by calling the user
// endpoint with the caller's bearer token. Verified principals are cached
// briefly keyed by a hash of the token, never the token itself.
type Client struct {
	httpClient     *fasthttp.Client
	userURL        string
	apiKey         string
	logger         *slog.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	timeout        time.Duration
	tokenCache     *cache.Store
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		userURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + "/auth/v1/user",
		apiKey:         strings.TrimSpace(cfg.APIKey),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		timeout:        timeout,
		tokenCache:     cache.NewStore(cacheTTL),
	}
}

type userMetadata struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture"`
	Position       string `json:"position"`
}

type userResponse struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata userMetadata `json:"user_metadata"`
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	value, err := c.tokenCache.GetOrLoad(ctx, hashToken(token), func(ctx context.Context) (any, error) {
		return c.verifyUpstream(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}

	principal, ok := value.(user.Principal)
	if !ok {
		return user.Principal{}, crerr.New("unexpected cached principal type")
	}

	return principal, nil
}

func (c *Client) verifyUpstream(ctx context.Context, token string) (user.Principal, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "gotrue circuit breaker rejected request", "state", c.breaker.State())
			return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
	}

	principal, err := c.fetchUser(ctx, token)
	if c.circuitEnabled {
		if crerr.Is(err, errGoTrueTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return user.Principal{}, err
	}

	return principal, nil
}

func (c *Client) fetchUser(ctx context.Context, token string) (user.Principal, error) {
	if err := ctx.Err(); err != nil {
		return user.Principal{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.userURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return user.Principal{}, crerr.WithSecondaryError(
			crerr.Wrap(errGoTrueTransient, "request gotrue user endpoint"), err)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusUnauthorized || status == fasthttp.StatusForbidden:
		return user.Principal{}, fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized)
	case status >= 500:
		return user.Principal{}, crerr.Wrapf(errGoTrueTransient, "gotrue responded %d", status)
	case status != fasthttp.StatusOK:
		return user.Principal{}, crerr.Newf("gotrue user endpoint failed with status %d", status)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.Set(resp.Body())

	var decoded userResponse
	if err := sonic.Unmarshal(buf.Bytes(), &decoded); err != nil {
		return user.Principal{}, crerr.Wrap(err, "unmarshal gotrue user response")
	}

	if strings.TrimSpace(decoded.ID) == "" {
		return user.Principal{}, crerr.New("invalid gotrue user response: id is empty")
	}

	role, err := user.ParseRole(decoded.UserMetadata.Role)
	if err != nil {
		role = user.RoleAthlete
	}

	return user.Principal{
		ID:       decoded.ID,
		Email:    decoded.Email,
		Name:     decoded.UserMetadata.Name,
		Role:     role,
		PhotoURL: decoded.UserMetadata.ProfilePicture,
		Position: decoded.UserMetadata.Position,
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
