package tryout

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// FilterAllRegions is the wildcard accepted by FilterByRegion.
const FilterAllRegions = "all"

// FilterByLocation keeps events whose city and state contain the respective
// query, case-insensitively. Empty queries do not constrain; with both empty
// the input slice is returned unchanged. The input is never mutated.
func FilterByLocation(events []Event, city, state string) []Event {
	if city == "" && state == "" {
		return events
	}

	cityQuery := strings.ToLower(city)
	stateQuery := strings.ToLower(state)

	out := make([]Event, 0, len(events))
	for _, e := range events {
		if cityQuery != "" && !strings.Contains(strings.ToLower(e.City), cityQuery) {
			continue
		}
		if stateQuery != "" && !strings.Contains(strings.ToLower(e.State), stateQuery) {
			continue
		}
		out = append(out, e)
	}

	return out
}

// FilterByRegion keeps events in the given region; "" and "all" return the
// input unchanged. Unknown regions simply match nothing.
func FilterByRegion(events []Event, region string) []Event {
	if region == "" || region == FilterAllRegions {
		return events
	}

	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Region == region {
			out = append(out, e)
		}
	}

	return out
}

// IsRegistrationOpen reports whether the deadline is strictly in the future
// according to the given clock. The clock is injected so callers and tests
// control the current instant.
func IsRegistrationOpen(deadline time.Time, clock clockwork.Clock) bool {
	return deadline.After(clock.Now())
}

func sortByDateAsc(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		return a.Date.Compare(b.Date)
	})
}

var ptWeekdays = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var ptMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDate renders the long pt-BR date form,
// e.g. "segunda-feira, 2 de março de 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		ptWeekdays[t.Weekday()], t.Day(), ptMonths[t.Month()-1], t.Year())
}
