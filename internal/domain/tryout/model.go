package tryout

import (
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/ranking"
)

// Contact holds the organizer contact block of a tryout listing.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// Event is one synthetic tryout (seletiva) listing. Generated once, held in
// memory and never mutated; RegistrationDeadline is always strictly before
// Date and CurrentParticipants never exceeds MaxParticipants.
type Event struct {
	ID          string
	Title       string
	Description string
	Club        string

	Date                 time.Time
	Time                 string
	RegistrationDeadline time.Time

	Venue   string
	Address string
	City    string
	State   string
	Region  string

	AgeRange  string
	Positions []ranking.Position

	MaxParticipants     int
	CurrentParticipants int

	Requirements []string
	Contact      Contact
	Cost         int
	IsActive     bool
	ImageURL     string
}

// RegionOther is the sentinel region for states missing from the lookup.
const RegionOther = "Outros"

var regionStates = map[string][]string{
	"Sudeste":      {"São Paulo", "Rio de Janeiro", "Minas Gerais", "Espírito Santo"},
	"Sul":          {"Rio Grande do Sul", "Santa Catarina", "Paraná"},
	"Nordeste":     {"Bahia", "Pernambuco", "Ceará", "Paraíba", "Maranhão"},
	"Norte":        {"Pará", "Amazonas"},
	"Centro-Oeste": {"Goiás"},
}

var regionOrder = []string{"Sudeste", "Sul", "Nordeste", "Norte", "Centro-Oeste"}

// Regions lists the five region filter keys in display order.
func Regions() []string {
	out := make([]string, len(regionOrder))
	copy(out, regionOrder)
	return out
}

// RegionForState resolves a state to its region, falling back to RegionOther
// for unmapped states instead of failing.
func RegionForState(state string) string {
	for _, region := range regionOrder {
		for _, s := range regionStates[region] {
			if s == state {
				return region
			}
		}
	}
	return RegionOther
}

// StatesInRegion returns the states mapped to a region, nil when unknown.
func StatesInRegion(region string) []string {
	states, ok := regionStates[region]
	if !ok {
		return nil
	}
	out := make([]string, len(states))
	copy(out, states)
	return out
}
