package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/ranking"
	"github.com/jonboulle/clockwork"
)

// RankingService serves the synthetic ranking roster. Every call produces a
// fresh random roster; an optional artificial delay mimics the latency of
// the data source the front end was built against.
type RankingService struct {
	clock clockwork.Clock
	delay time.Duration
}

func NewRankingService(clock clockwork.Clock, delay time.Duration) *RankingService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &RankingService{clock: clock, delay: delay}
}

func (s *RankingService) ListRankings(ctx context.Context, genderFilter, ageFilter string) ([]ranking.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "RankingService.ListRankings")
	defer span.End()

	genderFilter = strings.TrimSpace(genderFilter)
	ageFilter = strings.TrimSpace(ageFilter)
	if genderFilter == "" {
		genderFilter = ranking.FilterAll
	}
	if ageFilter == "" {
		ageFilter = ranking.FilterAll
	}

	if genderFilter != ranking.FilterAll {
		if _, err := ranking.ParseGender(genderFilter); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if ageFilter != ranking.FilterAll {
		if _, err := ranking.ParseAgeCategory(ageFilter); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	roster := ranking.GenerateRoster()

	return ranking.FilterByGenderAndAge(roster, genderFilter, ageFilter), nil
}

func (s *RankingService) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(s.delay):
		return nil
	}
}
