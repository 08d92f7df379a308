package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jogolindo/jogolindo-api/internal/domain/catalog"
	"github.com/jogolindo/jogolindo-api/internal/platform/cache"
)

// CatalogService serves the merchandise and video-lesson listings. The
// backing data is static, so listings are cached behind a TTL store.
type CatalogService struct {
	products catalog.ProductRepository
	lessons  catalog.LessonRepository
	cache    *cache.Store
}

func NewCatalogService(products catalog.ProductRepository, lessons catalog.LessonRepository, store *cache.Store) *CatalogService {
	return &CatalogService{products: products, lessons: lessons, cache: store}
}

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]catalog.Product, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	category = strings.TrimSpace(category)

	value, err := s.cache.GetOrLoad(ctx, "products", func(ctx context.Context) (any, error) {
		return s.products.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products, ok := value.([]catalog.Product)
	if !ok {
		return nil, fmt.Errorf("unexpected cached products type")
	}

	if category == "" {
		return products, nil
	}

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (s *CatalogService) ListLessons(ctx context.Context, moduleFilter string) ([]catalog.VideoLesson, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.ListLessons")
	defer span.End()

	moduleFilter = strings.TrimSpace(moduleFilter)

	var module catalog.LessonModule
	if moduleFilter != "" {
		parsed, err := catalog.ParseLessonModule(moduleFilter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		module = parsed
	}

	value, err := s.cache.GetOrLoad(ctx, "lessons", func(ctx context.Context) (any, error) {
		return s.lessons.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	lessons, ok := value.([]catalog.VideoLesson)
	if !ok {
		return nil, fmt.Errorf("unexpected cached lessons type")
	}

	if module == "" {
		return lessons, nil
	}

	out := make([]catalog.VideoLesson, 0, len(lessons))
	for _, l := range lessons {
		if l.Module == module {
			out = append(out, l)
		}
	}

	return out, nil
}
