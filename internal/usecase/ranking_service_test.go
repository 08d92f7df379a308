package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/ranking"
	"github.com/jogolindo/jogolindo-api/internal/usecase"
	"github.com/jonboulle/clockwork"
)

func TestListRankings_FullRoster(t *testing.T) {
	svc := usecase.NewRankingService(clockwork.NewFakeClock(), 0)

	roster, err := svc.ListRankings(context.Background(), "", "")
	if err != nil {
		t.Fatalf("list rankings: %v", err)
	}

	if len(roster) != 30 {
		t.Fatalf("expected 30 players, got %d", len(roster))
	}
	for i := 1; i < len(roster); i++ {
		if roster[i].Stats.OverallRating > roster[i-1].Stats.OverallRating {
			t.Fatalf("roster not sorted descending at %d", i)
		}
	}
}

func TestListRankings_FilterApplied(t *testing.T) {
	svc := usecase.NewRankingService(clockwork.NewFakeClock(), 0)

	roster, err := svc.ListRankings(context.Background(), "female", "profissional")
	if err != nil {
		t.Fatalf("list rankings: %v", err)
	}

	for _, p := range roster {
		if p.Gender != ranking.GenderFemale {
			t.Fatalf("unexpected gender %s", p.Gender)
		}
		if p.Age <= 20 {
			t.Fatalf("unexpected age %d for profissional", p.Age)
		}
	}
}

func TestListRankings_RejectsUnknownFilters(t *testing.T) {
	svc := usecase.NewRankingService(clockwork.NewFakeClock(), 0)

	if _, err := svc.ListRankings(context.Background(), "other", ""); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for gender, got %v", err)
	}
	if _, err := svc.ListRankings(context.Background(), "", "sub-19"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for category, got %v", err)
	}
}

func TestListRankings_CancelledContextDuringDelay(t *testing.T) {
	svc := usecase.NewRankingService(clockwork.NewRealClock(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.ListRankings(ctx, "", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
