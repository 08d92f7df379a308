package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/jogolindo/jogolindo-api/internal/config"
	"github.com/jogolindo/jogolindo-api/internal/domain/catalog"
	"github.com/jogolindo/jogolindo-api/internal/domain/social"
	"github.com/jogolindo/jogolindo-api/internal/domain/user"
	"github.com/jogolindo/jogolindo-api/internal/infrastructure/account/gotrue"
	"github.com/jogolindo/jogolindo-api/internal/infrastructure/repository/memory"
	"github.com/jogolindo/jogolindo-api/internal/infrastructure/repository/postgres"
	"github.com/jogolindo/jogolindo-api/internal/interfaces/httpapi"
	"github.com/jogolindo/jogolindo-api/internal/platform/cache"
	idgen "github.com/jogolindo/jogolindo-api/internal/platform/id"
	"github.com/jogolindo/jogolindo-api/internal/platform/resilience"
	"github.com/jogolindo/jogolindo-api/internal/usecase"
)

type repositories struct {
	users    user.Repository
	posts    social.PostRepository
	likes    social.LikeRepository
	comments social.CommentRepository
	ratings  social.RatingRepository
	products catalog.ProductRepository
	lessons  catalog.LessonRepository
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build repositories: %w", err)
	}

	clock := clockwork.NewRealClock()
	statsCache := cache.NewStore(cfg.CacheTTL)
	catalogCache := cache.NewStore(cfg.CacheTTL)

	rankingSvc := usecase.NewRankingService(clock, cfg.MockDataDelay)
	tryoutSvc := usecase.NewTryoutService(clock, cfg.MockDataDelay)
	socialSvc := usecase.NewSocialService(
		repos.posts,
		repos.likes,
		repos.comments,
		repos.ratings,
		idgen.NewUUIDGenerator(),
		clock,
		statsCache,
		cfg.PublicBaseURL,
	)
	catalogSvc := usecase.NewCatalogService(repos.products, repos.lessons, catalogCache)
	reconcileSvc := usecase.NewFeedReconcileService(
		repos.posts,
		repos.likes,
		repos.comments,
		statsCache,
		clock,
		logger,
		cfg.ReconcileWorkers,
	)

	gotrueClient := gotrue.NewClient(gotrue.ClientConfig{
		BaseURL:  cfg.SupabaseURL,
		APIKey:   cfg.SupabaseAnonKey,
		Timeout:  cfg.SupabaseAuthTimeout,
		CacheTTL: cfg.SupabaseTokenCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SupabaseCircuitEnabled,
			FailureThreshold: cfg.SupabaseCircuitFailureCount,
			OpenTimeout:      cfg.SupabaseCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SupabaseCircuitHalfOpenMax,
		},
	}, logger)

	accountSvc := usecase.NewAccountService(gotrueClient, repos.users, cache.NewStore(cfg.CacheTTL), logger)

	handler := httpapi.NewHandler(rankingSvc, tryoutSvc, socialSvc, catalogSvc, reconcileSvc, logger)
	router := httpapi.NewRouter(
		handler,
		accountSvc,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildRepositories picks the persistence backend. Without DB_URL the API
// runs fully in-memory, which is how local and preview environments run.
func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return repositories{
			users:    memory.NewUserRepository(),
			posts:    memory.NewPostRepository(nil),
			likes:    memory.NewLikeRepository(),
			comments: memory.NewCommentRepository(),
			ratings:  memory.NewRatingRepository(),
			products: memory.NewProductRepository(memory.SeedProducts()),
			lessons:  memory.NewLessonRepository(memory.SeedLessons()),
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, err
	}

	logger.Info("using postgres repositories", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		users:    postgres.NewUserRepository(db),
		posts:    postgres.NewPostRepository(db),
		likes:    postgres.NewLikeRepository(db),
		comments: postgres.NewCommentRepository(db),
		ratings:  postgres.NewRatingRepository(db),
		products: memory.NewProductRepository(memory.SeedProducts()),
		lessons:  memory.NewLessonRepository(memory.SeedLessons()),
	}, nil
}
