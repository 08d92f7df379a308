package tryout

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestGenerateEvent_DeadlineStrictlyBeforeDate(t *testing.T) {
	for i := 0; i < 200; i++ {
		e := GenerateEvent("1", baseTime)

		require.True(t, e.RegistrationDeadline.Before(e.Date),
			"deadline %v is not before date %v", e.RegistrationDeadline, e.Date)

		gap := e.Date.Sub(e.RegistrationDeadline)
		assert.GreaterOrEqual(t, gap, 24*time.Hour)
		assert.LessOrEqual(t, gap, 7*24*time.Hour)
	}
}

func TestGenerateEvent_CapacityInvariant(t *testing.T) {
	for i := 0; i < 200; i++ {
		e := GenerateEvent("1", baseTime)

		require.LessOrEqual(t, e.CurrentParticipants, e.MaxParticipants)
		assert.GreaterOrEqual(t, e.MaxParticipants, 50)
		assert.LessOrEqual(t, e.MaxParticipants, 149)
		assert.GreaterOrEqual(t, e.CurrentParticipants, 0)
	}
}

func TestGenerateEvent_RegionDerivedFromState(t *testing.T) {
	for i := 0; i < 100; i++ {
		e := GenerateEvent("1", baseTime)
		assert.Equal(t, RegionForState(e.State), e.Region)
		assert.NotEqual(t, RegionOther, e.Region, "every pooled state is mapped")
	}
}

func TestRegionForState_UnmappedFallsBackToOther(t *testing.T) {
	assert.Equal(t, "Outros", RegionForState("Acre"))
	assert.Equal(t, "Sul", RegionForState("Paraná"))
	assert.Equal(t, "Sudeste", RegionForState("Espírito Santo"))
}

func TestGenerateEvent_PositionsDistinct(t *testing.T) {
	for i := 0; i < 100; i++ {
		e := GenerateEvent("1", baseTime)

		require.GreaterOrEqual(t, len(e.Positions), 1)
		require.LessOrEqual(t, len(e.Positions), 3)

		seen := make(map[string]bool)
		for _, p := range e.Positions {
			require.False(t, seen[string(p)], "duplicate position %s", p)
			seen[string(p)] = true
		}
	}
}

func TestGenerateEvent_TimeSlot(t *testing.T) {
	re := regexp.MustCompile(`^(0[89]|1[0-9]):(00|30)$`)
	for i := 0; i < 100; i++ {
		e := GenerateEvent("1", baseTime)
		require.Regexp(t, re, e.Time)
	}
}

func TestGenerateEvent_ContactFormats(t *testing.T) {
	phoneRe := regexp.MustCompile(`^\(\d{2}\) 9\d{4}-\d{4}$`)
	for i := 0; i < 100; i++ {
		e := GenerateEvent("1", baseTime)

		require.Regexp(t, phoneRe, e.Contact.Phone)
		require.True(t, strings.HasPrefix(e.Contact.Email, "peneira@"))
		require.True(t, strings.HasSuffix(e.Contact.Email, ".com.br"))
	}
}

func TestGenerateEvent_Requirements(t *testing.T) {
	for i := 0; i < 100; i++ {
		e := GenerateEvent("1", baseTime)
		require.GreaterOrEqual(t, len(e.Requirements), 3)
		require.LessOrEqual(t, len(e.Requirements), 5)
	}
}

func TestGenerateEvent_RequirementsDoNotShareBackingArray(t *testing.T) {
	for i := 0; i < 100; i++ {
		e := GenerateEvent("1", baseTime)

		e.Requirements[0] = "mutated"
		e.Requirements = append(e.Requirements, "extra")

		assert.Equal(t, "Documento de identidade", requirementPool[0])
		for _, req := range requirementPool {
			require.NotEqual(t, "extra", req)
		}
	}
}

func TestGenerateEvent_CostRange(t *testing.T) {
	sawFree, sawPaid := false, false
	for i := 0; i < 500; i++ {
		e := GenerateEvent("1", baseTime)
		if e.Cost == 0 {
			sawFree = true
			continue
		}
		sawPaid = true
		require.GreaterOrEqual(t, e.Cost, 20)
		require.LessOrEqual(t, e.Cost, 119)
	}
	assert.True(t, sawFree, "free events never generated")
	assert.True(t, sawPaid, "paid events never generated")
}

func TestGenerateCollection_SortedAscendingByDate(t *testing.T) {
	events := GenerateCollection(baseTime)

	require.Len(t, events, 50)
	for i := 1; i < len(events); i++ {
		require.False(t, events[i].Date.Before(events[i-1].Date),
			"events[%d] is earlier than events[%d]", i, i-1)
	}
}
