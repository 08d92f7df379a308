package memory

import (
	"context"
	"sync"

	"github.com/jogolindo/jogolindo-api/internal/domain/catalog"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products []catalog.Product
}

func NewProductRepository(products []catalog.Product) *ProductRepository {
	return &ProductRepository{products: products}
}

func (r *ProductRepository) List(_ context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.products))
	out = append(out, r.products...)

	return out, nil
}

type LessonRepository struct {
	mu      sync.RWMutex
	lessons []catalog.VideoLesson
}

func NewLessonRepository(lessons []catalog.VideoLesson) *LessonRepository {
	return &LessonRepository{lessons: lessons}
}

func (r *LessonRepository) List(_ context.Context) ([]catalog.VideoLesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.VideoLesson, 0, len(r.lessons))
	out = append(out, r.lessons...)

	return out, nil
}
