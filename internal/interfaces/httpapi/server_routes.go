package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/rankings", handler.ListRankings)
	mux.HandleFunc("GET /v1/tryouts", handler.ListTryouts)
	mux.HandleFunc("GET /v1/tryouts/regions", handler.ListTryoutRegions)
	mux.HandleFunc("GET /v1/products", handler.ListProducts)
	mux.HandleFunc("GET /v1/lessons", handler.ListLessons)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/social/feed", RequireAuth(verifier, http.HandlerFunc(handler.ListFeed)))
	mux.Handle("POST /v1/social/posts", RequireAuth(verifier, http.HandlerFunc(handler.CreatePost)))
	mux.Handle("DELETE /v1/social/posts/{postID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePost)))
	mux.Handle("POST /v1/social/posts/{postID}/likes", RequireAuth(verifier, http.HandlerFunc(handler.LikePost)))
	mux.Handle("DELETE /v1/social/posts/{postID}/likes", RequireAuth(verifier, http.HandlerFunc(handler.UnlikePost)))
	mux.Handle("GET /v1/social/posts/{postID}/comments", RequireAuth(verifier, http.HandlerFunc(handler.ListComments)))
	mux.Handle("POST /v1/social/posts/{postID}/comments", RequireAuth(verifier, http.HandlerFunc(handler.AddComment)))
	mux.Handle("POST /v1/social/posts/{postID}/share", RequireAuth(verifier, http.HandlerFunc(handler.SharePost)))
	mux.Handle("DELETE /v1/social/comments/{commentID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteComment)))
	mux.Handle("POST /v1/social/comments/{commentID}/likes", RequireAuth(verifier, http.HandlerFunc(handler.LikeComment)))
	mux.Handle("DELETE /v1/social/comments/{commentID}/likes", RequireAuth(verifier, http.HandlerFunc(handler.UnlikeComment)))
	mux.Handle("PUT /v1/social/players/{userID}/ratings", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPlayerRating)))
	mux.Handle("GET /v1/social/players/{userID}/ratings/summary", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayerRatingSummary)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/reconcile-feed", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReconcileFeedJob)))
}
