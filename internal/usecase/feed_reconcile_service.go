package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
	"github.com/jogolindo/jogolindo-api/internal/platform/cache"
	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
)

const defaultReconcileWorkers = 4

// FeedReconcileService rebuilds feed counters from the stored like and
// comment rows. The optimistic write path only invalidates cache entries;
// this job repopulates them with authoritative values.
type FeedReconcileService struct {
	posts    social.PostRepository
	likes    social.LikeRepository
	comments social.CommentRepository

	statsCache *cache.Store
	clock      clockwork.Clock
	logger     *slog.Logger
	workers    int
}

func NewFeedReconcileService(
	posts social.PostRepository,
	likes social.LikeRepository,
	comments social.CommentRepository,
	statsCache *cache.Store,
	clock clockwork.Clock,
	logger *slog.Logger,
	workers int,
) *FeedReconcileService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = defaultReconcileWorkers
	}

	return &FeedReconcileService{
		posts:      posts,
		likes:      likes,
		comments:   comments,
		statsCache: statsCache,
		clock:      clock,
		logger:     logger,
		workers:    workers,
	}
}

// ReconcileResult summarizes one reconcile run.
type ReconcileResult struct {
	PostsTotal      int           `json:"postsTotal"`
	PostsReconciled int           `json:"postsReconciled"`
	PostsFailed     int           `json:"postsFailed"`
	Duration        time.Duration `json:"-"`
	DurationMs      int64         `json:"durationMs"`
}

func (s *FeedReconcileService) ReconcileFeed(ctx context.Context) (ReconcileResult, error) {
	ctx, span := startUsecaseSpan(ctx, "FeedReconcileService.ReconcileFeed")
	defer span.End()

	start := s.clock.Now()

	posts, err := s.posts.List(ctx)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("list posts: %w", err)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var reconciled, failed atomic.Int32
	var workers sync.WaitGroup
	for _, post := range posts {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := s.reconcilePost(ctx, post.ID); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "feed reconcile failed for post",
					"post_id", post.ID,
					"error", err,
				)
				return
			}
			reconciled.Add(1)
		}); err != nil {
			workers.Done()
			return ReconcileResult{}, fmt.Errorf("submit reconcile task: %w", err)
		}
	}
	workers.Wait()

	duration := s.clock.Now().Sub(start)
	result := ReconcileResult{
		PostsTotal:      len(posts),
		PostsReconciled: int(reconciled.Load()),
		PostsFailed:     int(failed.Load()),
		Duration:        duration,
		DurationMs:      duration.Milliseconds(),
	}

	s.logger.InfoContext(ctx, "feed reconcile finished",
		"posts_total", result.PostsTotal,
		"posts_reconciled", result.PostsReconciled,
		"posts_failed", result.PostsFailed,
		"duration_ms", result.DurationMs,
	)

	return result, nil
}

func (s *FeedReconcileService) reconcilePost(ctx context.Context, postID string) error {
	likes, err := s.likes.ListByPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("list likes: %w", err)
	}
	count, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("count comments: %w", err)
	}

	s.statsCache.Set(ctx, postID, postStats{likes: likes, commentsCount: count})

	return nil
}
