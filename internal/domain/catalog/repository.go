package catalog

import "context"

// ProductRepository describes product persistence needs from use cases.
type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
}

// LessonRepository describes lesson persistence needs from use cases.
type LessonRepository interface {
	List(ctx context.Context) ([]VideoLesson, error)
}
