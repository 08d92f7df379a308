package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/usecase"
	"github.com/jonboulle/clockwork"
)

func tryoutClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
}

func TestListTryouts_FullCollection(t *testing.T) {
	svc := usecase.NewTryoutService(tryoutClock(), 0)

	listings, err := svc.ListTryouts(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("list tryouts: %v", err)
	}

	if len(listings) != 50 {
		t.Fatalf("expected 50 listings, got %d", len(listings))
	}
	for _, l := range listings {
		if l.DateLabel == "" {
			t.Fatalf("missing date label for %s", l.ID)
		}
		// Deadlines land 1-7 days before dates at most 30 days out, so a
		// freshly generated collection is always open for registration.
		if !l.RegistrationOpen && l.RegistrationDeadline.After(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)) {
			t.Fatalf("registration flag inconsistent for %s", l.ID)
		}
	}
}

func TestListTryouts_RegionFilter(t *testing.T) {
	svc := usecase.NewTryoutService(tryoutClock(), 0)

	listings, err := svc.ListTryouts(context.Background(), "", "", "Nordeste")
	if err != nil {
		t.Fatalf("list tryouts: %v", err)
	}
	for _, l := range listings {
		if l.Region != "Nordeste" {
			t.Fatalf("unexpected region %s", l.Region)
		}
	}
}

func TestListTryouts_RejectsUnknownRegion(t *testing.T) {
	svc := usecase.NewTryoutService(tryoutClock(), 0)

	if _, err := svc.ListTryouts(context.Background(), "", "", "Sudoeste"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListTryouts_AllRegionWildcard(t *testing.T) {
	svc := usecase.NewTryoutService(tryoutClock(), 0)

	listings, err := svc.ListTryouts(context.Background(), "", "", "all")
	if err != nil {
		t.Fatalf("list tryouts: %v", err)
	}
	if len(listings) != 50 {
		t.Fatalf("expected wildcard to keep all 50 listings, got %d", len(listings))
	}
}

func TestListRegions(t *testing.T) {
	svc := usecase.NewTryoutService(tryoutClock(), 0)

	regions, err := svc.ListRegions(context.Background())
	if err != nil {
		t.Fatalf("list regions: %v", err)
	}
	if len(regions) != 5 {
		t.Fatalf("expected 5 regions, got %d", len(regions))
	}
}
