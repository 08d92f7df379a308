package ranking

import "fmt"

// Gender is one of exactly two roster categories.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Position represents the four field position categories.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

var AllPositions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

// AgeCategory groups players by age for ranking filters.
type AgeCategory string

const (
	CategorySub15        AgeCategory = "sub-15"
	CategorySub17        AgeCategory = "sub-17"
	CategorySub20        AgeCategory = "sub-20"
	CategoryProfissional AgeCategory = "profissional"
)

// Stats is a per-player technical and performance snapshot. The six skill
// ratings are integers 1-5; OverallRating is always derived from them via
// ComputeOverallRating and never set independently.
type Stats struct {
	Passing   int
	Shooting  int
	Dribbling int
	Speed     int
	Strength  int
	Jumping   int

	Goals         int
	Assists       int
	MatchesPlayed int

	// PenaltySaves is only meaningful for goalkeepers; nil means
	// "not applicable", not zero.
	PenaltySaves *int

	Clubs []string
	Agent string

	OverallRating int
}

// Player is a generated ranking entry: identity plus a stats snapshot.
// Age is fixed at generation time and not recomputed from the birth date.
type Player struct {
	ID        string
	Email     string
	Name      string
	Gender    Gender
	BirthDate string
	Country   string
	City      string
	Position  Position
	HeightCm  int
	WeightKg  int
	PhotoURL  string
	CreatedAt string
	Stats     Stats
	Age       int
}

// ComputeOverallRating maps the mean of the six skills onto a 0-100 scale.
func ComputeOverallRating(s Stats) int {
	sum := s.Passing + s.Shooting + s.Dribbling + s.Speed + s.Strength + s.Jumping
	mean := float64(sum) / 6.0
	return int(mean*20 + 0.5)
}

func ParseGender(v string) (Gender, error) {
	switch Gender(v) {
	case GenderMale, GenderFemale:
		return Gender(v), nil
	default:
		return "", fmt.Errorf("invalid gender: %q", v)
	}
}

func ParsePosition(v string) (Position, error) {
	switch Position(v) {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return Position(v), nil
	default:
		return "", fmt.Errorf("invalid position: %q", v)
	}
}

func ParseAgeCategory(v string) (AgeCategory, error) {
	switch AgeCategory(v) {
	case CategorySub15, CategorySub17, CategorySub20, CategoryProfissional:
		return AgeCategory(v), nil
	default:
		return "", fmt.Errorf("invalid age category: %q", v)
	}
}

// PositionLabel returns the Portuguese display label for a position.
func PositionLabel(p Position) string {
	switch p {
	case PositionGoalkeeper:
		return "Goleiro"
	case PositionDefender:
		return "Defensor"
	case PositionMidfielder:
		return "Meio-campo"
	case PositionForward:
		return "Atacante"
	default:
		return string(p)
	}
}

// CategoryLabel returns the combined gender + age category display label.
func CategoryLabel(g Gender, c AgeCategory) string {
	genderLabel := "Masculino"
	if g == GenderFemale {
		genderLabel = "Feminino"
	}

	var ageLabel string
	switch c {
	case CategorySub15:
		ageLabel = "Sub-15"
	case CategorySub17:
		ageLabel = "Sub-17"
	case CategorySub20:
		ageLabel = "Sub-20"
	case CategoryProfissional:
		ageLabel = "Profissional"
	default:
		ageLabel = string(c)
	}

	return genderLabel + " " + ageLabel
}
