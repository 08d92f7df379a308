package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/user"
	"github.com/jogolindo/jogolindo-api/internal/infrastructure/repository/memory"
	"github.com/jogolindo/jogolindo-api/internal/platform/cache"
	"github.com/jogolindo/jogolindo-api/internal/usecase"
)

type stubTokenVerifier struct {
	principal user.Principal
	err       error
}

func (s stubTokenVerifier) VerifyAccessToken(context.Context, string) (user.Principal, error) {
	return s.principal, s.err
}

type countingUserRepo struct {
	upserts  int
	failWith error
}

func (r *countingUserRepo) Upsert(context.Context, user.Principal) error {
	r.upserts++
	return r.failWith
}

func (r *countingUserRepo) GetByID(context.Context, string) (user.Principal, bool, error) {
	return user.Principal{}, false, nil
}

func testPrincipal() user.Principal {
	return user.Principal{
		ID:       "user-1",
		Email:    "joao@jogolindo.com.br",
		Name:     "João Silva",
		Role:     user.RoleAthlete,
		PhotoURL: "https://cdn.jogolindo.com.br/u/1.jpg",
		Position: "Atacante",
	}
}

func TestAccountService_VerifySyncsProfile(t *testing.T) {
	users := memory.NewUserRepository()
	svc := usecase.NewAccountService(
		stubTokenVerifier{principal: testPrincipal()},
		users,
		cache.NewStore(time.Minute),
		nil,
	)

	got, err := svc.VerifyAccessToken(context.Background(), "token")
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if got.ID != "user-1" {
		t.Fatalf("unexpected principal id: %q", got.ID)
	}

	stored, found, err := users.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !found {
		t.Fatalf("expected profile to be stored after verification")
	}
	if stored.Name != "João Silva" || stored.Position != "Atacante" {
		t.Fatalf("unexpected stored profile: %+v", stored)
	}
}

func TestAccountService_VerifyErrorSkipsSync(t *testing.T) {
	users := &countingUserRepo{}
	svc := usecase.NewAccountService(
		stubTokenVerifier{err: usecase.ErrUnauthorized},
		users,
		cache.NewStore(time.Minute),
		nil,
	)

	if _, err := svc.VerifyAccessToken(context.Background(), "bad"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if users.upserts != 0 {
		t.Fatalf("expected no upsert for rejected token, got %d", users.upserts)
	}
}

func TestAccountService_SyncGuardedByTTL(t *testing.T) {
	users := &countingUserRepo{}
	svc := usecase.NewAccountService(
		stubTokenVerifier{principal: testPrincipal()},
		users,
		cache.NewStore(time.Minute),
		nil,
	)

	for i := 0; i < 3; i++ {
		if _, err := svc.VerifyAccessToken(context.Background(), "token"); err != nil {
			t.Fatalf("verify access token: %v", err)
		}
	}

	if users.upserts != 1 {
		t.Fatalf("expected a single upsert within the ttl window, got %d", users.upserts)
	}
}

func TestAccountService_UpsertFailureStillAuthorizes(t *testing.T) {
	users := &countingUserRepo{failWith: errors.New("db down")}
	svc := usecase.NewAccountService(
		stubTokenVerifier{principal: testPrincipal()},
		users,
		cache.NewStore(time.Minute),
		nil,
	)

	got, err := svc.VerifyAccessToken(context.Background(), "token")
	if err != nil {
		t.Fatalf("expected auth to succeed despite sync failure, got %v", err)
	}
	if got.ID != "user-1" {
		t.Fatalf("unexpected principal id: %q", got.ID)
	}

	// A failed sync is not cached, the next request retries it.
	if _, err := svc.VerifyAccessToken(context.Background(), "token"); err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if users.upserts != 2 {
		t.Fatalf("expected sync retry after failure, got %d upserts", users.upserts)
	}
}
