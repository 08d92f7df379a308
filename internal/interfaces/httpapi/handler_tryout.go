package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/usecase"
)

func (h *Handler) ListTryouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTryouts")
	defer span.End()

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	state := strings.TrimSpace(r.URL.Query().Get("state"))
	region := strings.TrimSpace(r.URL.Query().Get("region"))

	listings, err := h.tryoutService.ListTryouts(ctx, city, state, region)
	if err != nil {
		h.logger.WarnContext(ctx, "list tryouts failed", "city", city, "state", state, "region", region, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tryoutDTO, 0, len(listings))
	for _, l := range listings {
		items = append(items, tryoutToDTO(ctx, l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTryoutRegions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTryoutRegions")
	defer span.End()

	regions, err := h.tryoutService.ListRegions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list tryout regions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, regions)
}

type tryoutContactDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type tryoutDTO struct {
	ID                   string           `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Club                 string           `json:"club"`
	Date                 string           `json:"date"`
	DateLabel            string           `json:"dateLabel"`
	Time                 string           `json:"time"`
	RegistrationDeadline string           `json:"registrationDeadline"`
	RegistrationOpen     bool             `json:"registrationOpen"`
	Venue                string           `json:"venue"`
	Address              string           `json:"address"`
	City                 string           `json:"city"`
	State                string           `json:"state"`
	Region               string           `json:"region"`
	AgeRange             string           `json:"ageRange"`
	Positions            []string         `json:"positions"`
	MaxParticipants      int              `json:"maxParticipants"`
	CurrentParticipants  int              `json:"currentParticipants"`
	Requirements         []string         `json:"requirements"`
	Contact              tryoutContactDTO `json:"contact"`
	Cost                 int              `json:"cost"`
	IsActive             bool             `json:"isActive"`
	ImageURL             string           `json:"imageUrl"`
}

func tryoutToDTO(ctx context.Context, l usecase.TryoutListing) tryoutDTO {
	ctx, span := startSpan(ctx, "httpapi.tryoutToDTO")
	defer span.End()

	positions := make([]string, 0, len(l.Positions))
	for _, p := range l.Positions {
		positions = append(positions, string(p))
	}

	return tryoutDTO{
		ID:                   l.ID,
		Title:                l.Title,
		Description:          l.Description,
		Club:                 l.Club,
		Date:                 l.Date.UTC().Format(time.RFC3339),
		DateLabel:            l.DateLabel,
		Time:                 l.Time,
		RegistrationDeadline: l.RegistrationDeadline.UTC().Format(time.RFC3339),
		RegistrationOpen:     l.RegistrationOpen,
		Venue:                l.Venue,
		Address:              l.Address,
		City:                 l.City,
		State:                l.State,
		Region:               l.Region,
		AgeRange:             l.AgeRange,
		Positions:            positions,
		MaxParticipants:      l.MaxParticipants,
		CurrentParticipants:  l.CurrentParticipants,
		Requirements:         append([]string(nil), l.Requirements...),
		Contact: tryoutContactDTO{
			Name:  l.Contact.Name,
			Phone: l.Contact.Phone,
			Email: l.Contact.Email,
		},
		Cost:     l.Cost,
		IsActive: l.IsActive,
		ImageURL: l.ImageURL,
	}
}
