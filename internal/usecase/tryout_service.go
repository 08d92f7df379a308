package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/tryout"
	"github.com/jonboulle/clockwork"
)

// TryoutService serves synthetic seletiva listings. Each call regenerates
// the collection relative to the injected clock, so listed events always sit
// in the near future.
type TryoutService struct {
	clock clockwork.Clock
	delay time.Duration
}

func NewTryoutService(clock clockwork.Clock, delay time.Duration) *TryoutService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &TryoutService{clock: clock, delay: delay}
}

// TryoutListing pairs an event with its computed registration state.
type TryoutListing struct {
	tryout.Event
	RegistrationOpen bool
	DateLabel        string
}

func (s *TryoutService) ListTryouts(ctx context.Context, city, state, region string) ([]TryoutListing, error) {
	ctx, span := startUsecaseSpan(ctx, "TryoutService.ListTryouts")
	defer span.End()

	region = strings.TrimSpace(region)
	if region != "" && region != tryout.FilterAllRegions && region != tryout.RegionOther {
		if !slices.Contains(tryout.Regions(), region) {
			return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidInput, region)
		}
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	events := tryout.GenerateCollection(s.clock.Now())
	events = tryout.FilterByLocation(events, strings.TrimSpace(city), strings.TrimSpace(state))
	events = tryout.FilterByRegion(events, region)

	out := make([]TryoutListing, 0, len(events))
	for _, e := range events {
		out = append(out, TryoutListing{
			Event:            e,
			RegistrationOpen: tryout.IsRegistrationOpen(e.RegistrationDeadline, s.clock),
			DateLabel:        tryout.FormatDate(e.Date),
		})
	}

	return out, nil
}

func (s *TryoutService) ListRegions(ctx context.Context) ([]string, error) {
	_, span := startUsecaseSpan(ctx, "TryoutService.ListRegions")
	defer span.End()

	return tryout.Regions(), nil
}

func (s *TryoutService) simulateLatency(ctx context.Context) error {
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
