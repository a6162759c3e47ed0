package http

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/NewsContentAPI/internal/domain"
	"github.com/NewsContentAPI/pkg/config"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ContentQueries is the lookup surface the API routes call into.
type ContentQueries interface {
	GetArticle(ctx context.Context, baseURL, id string) (domain.ArticleDetail, error)
	ListFeaturedArticles(ctx context.Context, baseURL string) []domain.FeaturedArticle
	ListNews(ctx context.Context) []domain.NewsItem
	GetPoll(ctx context.Context, baseURL, id string) (domain.PollView, error)
	GetDiscussion(ctx context.Context, baseURL string, id int) domain.DiscussionView
}

// AssetOpener resolves a static filename to an open file.
type AssetOpener interface {
	Open(name string) (fs.File, fs.FileInfo, error)
}

// ReadinessProbe backs the /ready endpoint.
type ReadinessProbe interface {
	Check(ctx context.Context) error
}

// NewRouter builds the API, static and operational routes.
func NewRouter(cfg *config.Config, content ContentQueries, assets AssetOpener, readiness ReadinessProbe) http.Handler {
	h := &handlers{content: content, assets: assets, readiness: readiness}
	cors := corsMiddleware(cfg.AllowedOrigin)

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, observeMiddleware, mux.CORSMethodMiddleware(r), cors)

	r.HandleFunc("/api/news", h.listNews).Methods(http.MethodGet, http.MethodOptions)
	// featured must be registered before {id}
	r.HandleFunc("/api/articles/featured", h.listFeaturedArticles).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/articles/{id}", h.getArticle).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/polls/{id}", h.getPoll).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/discussions/{id:[0-9]+}", h.getDiscussion).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/static/{filename}", h.serveAsset).Methods(http.MethodGet, http.MethodHead, http.MethodOptions)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.ready).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler())

	// unmatched requests are observed too, but never answered as a preflight
	origin := allowOriginMiddleware(cfg.AllowedOrigin)
	r.NotFoundHandler = requestIDMiddleware(observeMiddleware(origin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	}))))
	r.MethodNotAllowedHandler = requestIDMiddleware(observeMiddleware(origin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}))))

	return r
}

func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
