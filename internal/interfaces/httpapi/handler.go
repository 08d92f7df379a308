package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jogolindo/jogolindo-api/internal/usecase"
)

type Handler struct {
	rankingService   *usecase.RankingService
	tryoutService    *usecase.TryoutService
	socialService    *usecase.SocialService
	catalogService   *usecase.CatalogService
	reconcileService *usecase.FeedReconcileService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	rankingService *usecase.RankingService,
	tryoutService *usecase.TryoutService,
	socialService *usecase.SocialService,
	catalogService *usecase.CatalogService,
	reconcileService *usecase.FeedReconcileService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		rankingService:   rankingService,
		tryoutService:    tryoutService,
		socialService:    socialService,
		catalogService:   catalogService,
		reconcileService: reconcileService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) RunReconcileFeedJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReconcileFeedJob")
	defer span.End()

	result, err := h.reconcileService.ReconcileFeed(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reconcile feed job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
