package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jogolindo/jogolindo-api/internal/domain/ranking"
)

func (h *Handler) ListRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRankings")
	defer span.End()

	gender := strings.TrimSpace(r.URL.Query().Get("gender"))
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	players, err := h.rankingService.ListRankings(ctx, gender, category)
	if err != nil {
		h.logger.WarnContext(ctx, "list rankings failed", "gender", gender, "category", category, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankedPlayerDTO, 0, len(players))
	for i, p := range players {
		items = append(items, rankedPlayerToDTO(ctx, p, i+1))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type rankedPlayerDTO struct {
	Rank          string         `json:"rank"`
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Gender        string         `json:"gender"`
	BirthDate     string         `json:"birthDate"`
	Age           int            `json:"age"`
	Country       string         `json:"country"`
	City          string         `json:"city"`
	Position      string         `json:"position"`
	PositionLabel string         `json:"positionLabel"`
	HeightCm      int            `json:"heightCm"`
	WeightKg      int            `json:"weightKg"`
	PhotoURL      string         `json:"photoUrl"`
	CreatedAt     string         `json:"createdAt"`
	Stats         playerStatsDTO `json:"stats"`
}

type playerStatsDTO struct {
	Passing       int      `json:"passing"`
	Shooting      int      `json:"shooting"`
	Dribbling     int      `json:"dribbling"`
	Speed         int      `json:"speed"`
	Strength      int      `json:"strength"`
	Jumping       int      `json:"jumping"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	MatchesPlayed int      `json:"matchesPlayed"`
	PenaltySaves  *int     `json:"penaltySaves,omitempty"`
	Clubs         []string `json:"clubs"`
	Agent         string   `json:"agent,omitempty"`
	OverallRating int      `json:"overallRating"`
}

func rankedPlayerToDTO(ctx context.Context, p ranking.Player, rank int) rankedPlayerDTO {
	ctx, span := startSpan(ctx, "httpapi.rankedPlayerToDTO")
	defer span.End()

	return rankedPlayerDTO{
		Rank:          ordinalRank(ctx, rank),
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		Gender:        string(p.Gender),
		BirthDate:     p.BirthDate,
		Age:           p.Age,
		Country:       p.Country,
		City:          p.City,
		Position:      string(p.Position),
		PositionLabel: ranking.PositionLabel(p.Position),
		HeightCm:      p.HeightCm,
		WeightKg:      p.WeightKg,
		PhotoURL:      p.PhotoURL,
		CreatedAt:     p.CreatedAt,
		Stats: playerStatsDTO{
			Passing:       p.Stats.Passing,
			Shooting:      p.Stats.Shooting,
			Dribbling:     p.Stats.Dribbling,
			Speed:         p.Stats.Speed,
			Strength:      p.Stats.Strength,
			Jumping:       p.Stats.Jumping,
			Goals:         p.Stats.Goals,
			Assists:       p.Stats.Assists,
			MatchesPlayed: p.Stats.MatchesPlayed,
			PenaltySaves:  p.Stats.PenaltySaves,
			Clubs:         append([]string(nil), p.Stats.Clubs...),
			Agent:         p.Stats.Agent,
			OverallRating: p.Stats.OverallRating,
		},
	}
}

// ordinalRank renders the list position the way the front end displays it
// ("1º", "2º", ...).
func ordinalRank(ctx context.Context, rank int) string {
	_, span := startSpan(ctx, "httpapi.ordinalRank")
	defer span.End()

	return strconv.Itoa(rank) + "º"
}
