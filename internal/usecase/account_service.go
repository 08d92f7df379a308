package usecase

import (
	"context"
	"log/slog"

	"github.com/jogolindo/jogolindo-api/internal/domain/user"
	"github.com/jogolindo/jogolindo-api/internal/platform/cache"
)

// TokenVerifier resolves an access token into the caller's principal.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (user.Principal, error)
}

// AccountService verifies access tokens and mirrors each verified caller
// into the local user store, the way the web client synced its profile on
// sign-in. Social rows reference that store, so the mirror must land before
// a caller's first write. A TTL guard keeps the upsert off the hot path for
// repeat requests.
type AccountService struct {
	verifier TokenVerifier
	users    user.Repository
	synced   *cache.Store
	logger   *slog.Logger
}

func NewAccountService(verifier TokenVerifier, users user.Repository, synced *cache.Store, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountService{
		verifier: verifier,
		users:    users,
		synced:   synced,
		logger:   logger,
	}
}

func (s *AccountService) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.VerifyAccessToken")
	defer span.End()

	principal, err := s.verifier.VerifyAccessToken(ctx, token)
	if err != nil {
		return user.Principal{}, err
	}

	s.syncProfile(ctx, principal)

	return principal, nil
}

// syncProfile is best-effort: a failed upsert must not reject an otherwise
// valid token, read-only requests still work and the next request retries.
func (s *AccountService) syncProfile(ctx context.Context, principal user.Principal) {
	if s.synced != nil {
		if _, ok := s.synced.Get(ctx, principal.ID); ok {
			return
		}
	}

	if err := s.users.Upsert(ctx, principal); err != nil {
		s.logger.WarnContext(ctx, "profile sync failed",
			"user_id", principal.ID,
			"error", err,
		)
		return
	}

	if s.synced != nil {
		s.synced.Set(ctx, principal.ID, struct{}{})
	}
}
