package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
	"github.com/jogolindo/jogolindo-api/internal/infrastructure/repository/memory"
	"github.com/jogolindo/jogolindo-api/internal/platform/cache"
	idgen "github.com/jogolindo/jogolindo-api/internal/platform/id"
	"github.com/jogolindo/jogolindo-api/internal/usecase"
	"github.com/jonboulle/clockwork"
)

func TestReconcileFeed_RebuildsCountersFromRows(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	posts := memory.NewPostRepository([]social.Post{
		seedPost("p1", "u1", "Primeiro", base),
		seedPost("p2", "u2", "Segundo", base.Add(time.Hour)),
	})
	likes := memory.NewLikeRepository()
	comments := memory.NewCommentRepository()
	clock := clockwork.NewFakeClockAt(base.Add(24 * time.Hour))
	store := cache.NewStore(time.Minute)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := context.Background()
	if err := likes.Upsert(ctx, social.PostLike{ID: "l1", UserID: "u2", PostID: "p1", Rating: 5}); err != nil {
		t.Fatalf("seed like: %v", err)
	}
	if err := likes.Upsert(ctx, social.PostLike{ID: "l2", UserID: "u3", PostID: "p1", Rating: 2}); err != nil {
		t.Fatalf("seed like: %v", err)
	}
	if err := comments.Create(ctx, social.Comment{ID: "c1", UserID: "u3", PostID: "p1", Content: "boa"}); err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	reconciler := usecase.NewFeedReconcileService(posts, likes, comments, store, clock, logger, 2)
	result, err := reconciler.ReconcileFeed(ctx)
	if err != nil {
		t.Fatalf("reconcile feed: %v", err)
	}

	if result.PostsTotal != 2 || result.PostsReconciled != 2 || result.PostsFailed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	// The reconciled values must be what the feed serves next.
	feed := usecase.NewSocialService(posts, likes, comments, memory.NewRatingRepository(),
		idgen.NewUUIDGenerator(), clock, store, "https://app.jogolindo.com.br")

	listed, err := feed.ListFeed(ctx, "u2")
	if err != nil {
		t.Fatalf("list feed: %v", err)
	}
	for _, p := range listed {
		if p.ID != "p1" {
			continue
		}
		if p.LikesCount != 2 || p.AverageRating != 3.5 || p.CommentsCount != 1 {
			t.Fatalf("unexpected reconciled counters: %+v", p)
		}
		if p.ViewerRating == nil || *p.ViewerRating != 5 {
			t.Fatalf("expected viewer rating 5, got %v", p.ViewerRating)
		}
	}
}

func TestReconcileFeed_EmptyFeed(t *testing.T) {
	reconciler := usecase.NewFeedReconcileService(
		memory.NewPostRepository(nil),
		memory.NewLikeRepository(),
		memory.NewCommentRepository(),
		cache.NewStore(time.Minute),
		clockwork.NewFakeClock(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		0,
	)

	result, err := reconciler.ReconcileFeed(context.Background())
	if err != nil {
		t.Fatalf("reconcile feed: %v", err)
	}
	if result.PostsTotal != 0 || result.PostsReconciled != 0 || result.PostsFailed != 0 {
		t.Fatalf("unexpected result for empty feed: %+v", result)
	}
}
