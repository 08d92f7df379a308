package catalog

import "fmt"

// Product is one item in the school's merchandise market.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Category    string
	InStock     bool
}

// LessonModule groups video lessons by curriculum track. The set is closed.
type LessonModule string

const (
	ModuleTechnique   LessonModule = "technique"
	ModuleTactics     LessonModule = "tactics"
	ModuleHealth      LessonModule = "health"
	ModuleCitizenship LessonModule = "citizenship"
)

// ParseLessonModule rejects anything outside the closed module set.
func ParseLessonModule(s string) (LessonModule, error) {
	switch LessonModule(s) {
	case ModuleTechnique, ModuleTactics, ModuleHealth, ModuleCitizenship:
		return LessonModule(s), nil
	}
	return "", fmt.Errorf("invalid lesson module: %s", s)
}

// VideoLesson is one curriculum video.
type VideoLesson struct {
	ID           string
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Module       LessonModule
	Topic        string
	Duration     int
	CreatedAt    string
}
