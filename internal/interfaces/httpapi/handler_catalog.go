package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/jogolindo/jogolindo-api/internal/domain/catalog"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListProducts")
	defer span.End()

	category := strings.TrimSpace(r.URL.Query().Get("category"))

	products, err := h.catalogService.ListProducts(ctx, category)
	if err != nil {
		h.logger.WarnContext(ctx, "list products failed", "category", category, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]productDTO, 0, len(products))
	for _, p := range products {
		items = append(items, productToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLessons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLessons")
	defer span.End()

	module := strings.TrimSpace(r.URL.Query().Get("module"))

	lessons, err := h.catalogService.ListLessons(ctx, module)
	if err != nil {
		h.logger.WarnContext(ctx, "list lessons failed", "module", module, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]videoLessonDTO, 0, len(lessons))
	for _, l := range lessons {
		items = append(items, videoLessonToDTO(ctx, l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type productDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

type videoLessonDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Module       string `json:"module"`
	Topic        string `json:"topic"`
	Duration     int    `json:"duration"`
	CreatedAt    string `json:"createdAt"`
}

func productToDTO(ctx context.Context, p catalog.Product) productDTO {
	ctx, span := startSpan(ctx, "httpapi.productToDTO")
	defer span.End()

	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		InStock:     p.InStock,
	}
}

func videoLessonToDTO(ctx context.Context, l catalog.VideoLesson) videoLessonDTO {
	ctx, span := startSpan(ctx, "httpapi.videoLessonToDTO")
	defer span.End()

	return videoLessonDTO{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		VideoURL:     l.VideoURL,
		ThumbnailURL: l.ThumbnailURL,
		Module:       string(l.Module),
		Topic:        l.Topic,
		Duration:     l.Duration,
		CreatedAt:    l.CreatedAt,
	}
}
