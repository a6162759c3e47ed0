package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NewsContentAPI/internal/app"
	"github.com/NewsContentAPI/internal/domain"
	"github.com/NewsContentAPI/internal/infra/assets"
	"github.com/NewsContentAPI/internal/infra/catalog"
	"github.com/NewsContentAPI/internal/infra/metrics"
	"github.com/NewsContentAPI/pkg/config"
	"github.com/NewsContentAPI/pkg/logging"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHost = "192.168.0.12:5050"

type stubReadiness struct{ err error }

func (s stubReadiness) Check(context.Context) error { return s.err }

func newTestRouter(t *testing.T, cat domain.Catalog, readiness ReadinessProbe) http.Handler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guardian-logo.png"), []byte("\x89PNG-guardian"), 0o644))

	cfg := &config.Config{ServerPort: "0", AllowedOrigin: "*"}
	store := assets.NewFileStore(dir, logging.NewErrorSampler(10))
	return NewRouter(cfg, app.NewContentService(cat), store, readiness)
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.Host = testHost
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestGetArticle(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})
	prefix := "http://" + testHost + "/static/"

	for _, a := range catalog.Default().ListArticles(context.Background()) {
		rec := do(t, router, http.MethodGet, "/api/articles/"+a.ID)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got domain.ArticleDetail
		decode(t, rec, &got)
		assert.Equal(t, a.ID, got.ID)
		assert.True(t, strings.HasPrefix(got.ImageURL, prefix), got.ImageURL)
		assert.True(t, strings.HasPrefix(got.PublisherLogoURL, prefix), got.PublisherLogoURL)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/articles/999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Article not found"}`, rec.Body.String())
}

func TestListFeaturedArticles(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/articles/featured")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Status string `json:"status"`
		Data   struct {
			Articles []domain.FeaturedArticle `json:"articles"`
		} `json:"data"`
	}
	decode(t, rec, &got)

	assert.Equal(t, "success", got.Status)
	require.Len(t, got.Data.Articles, 10)
	assert.Equal(t, "1", got.Data.Articles[0].ID)
	assert.Equal(t, "10", got.Data.Articles[9].ID)
	for _, a := range got.Data.Articles {
		assert.NotEmpty(t, a.ImageURL)
		assert.NotEmpty(t, a.SourceLogo)
	}
}

func TestListNews(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/news")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "["), rec.Body.String())

	var got []domain.NewsItem
	decode(t, rec, &got)
	require.Len(t, got, 10)
	for _, n := range got {
		assert.NotEmpty(t, n.Title)
		assert.NotEmpty(t, n.Source)
	}
	assert.Equal(t, "The Guardian", got[0].Source)
}

func TestGetPoll(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/polls/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.PollView
	decode(t, rec, &got)
	assert.Equal(t, "Environment", got.Article.Category)
	require.Len(t, got.Options, 4)
	assert.Equal(t, []int{18, 72, 8, 2}, []int{
		got.Options[0].Percentage, got.Options[1].Percentage, got.Options[2].Percentage, got.Options[3].Percentage,
	})
}

func TestGetPoll_NotFound(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/polls/999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Poll not found"}`, rec.Body.String())
}

func TestGetPoll_DanglingReference(t *testing.T) {
	cat, err := catalog.New(
		[]domain.Article{{ID: "1", Title: "Only article"}},
		[]domain.Poll{{ID: "9", ArticleID: "404", Question: "Orphan?"}},
		nil,
	)
	require.NoError(t, err)
	router := newTestRouter(t, cat, stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/polls/9")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Poll article not found"}`, rec.Body.String())
}

func TestGetDiscussion(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/discussions/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.DiscussionView
	decode(t, rec, &got)
	assert.Equal(t, "http://"+testHost+"/static/climate-march.jpg", got.Article.ImageURL)
	assert.NotEmpty(t, got.Comments)
}

// Missing discussions answer 200 with an empty thread, never 404.
func TestGetDiscussion_MissingReturnsEmptyShell(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	for _, target := range []string{"/api/discussions/999", "/api/discussions/99999999999999999999999"} {
		rec := do(t, router, http.MethodGet, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `{"article":{},"comments":[]}`, rec.Body.String(), target)
	}
}

func TestGetDiscussion_NonIntegerID(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/discussions/abc")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestResponses_AreIdempotent(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	for _, target := range []string{
		"/api/articles/3",
		"/api/articles/featured",
		"/api/polls/2",
		"/api/discussions/7",
		"/api/discussions/999",
		"/api/articles/999",
	} {
		first := do(t, router, http.MethodGet, target)
		second := do(t, router, http.MethodGet, target)
		assert.Equal(t, first.Code, second.Code, target)
		assert.Equal(t, first.Body.Bytes(), second.Body.Bytes(), target)
	}
}

func TestServeAsset(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/static/guardian-logo.png")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "\x89PNG-guardian", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = do(t, router, http.MethodGet, "/static/missing.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"File not found"}`, rec.Body.String())

	// mux cleans the path and redirects, it never reaches the file store
	rec = do(t, router, http.MethodGet, "/static/..%2F..%2Fetc%2Fpasswd")
	assert.NotEqual(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "root:")
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/articles/1")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, router, http.MethodOptions, "/api/polls/1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)

	rec = do(t, router, http.MethodGet, "/api/articles/999")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownRouteIsNotPreflight(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodOptions, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Headers"))
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/api/articles/1")
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/articles/1", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodPost, "/api/articles/1")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestUnmatchedRequests_AreObserved(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})
	notFound := metrics.HTTPRequests.WithLabelValues("unmatched", http.MethodGet, "404")
	before := testutil.ToFloat64(notFound)

	rec := do(t, router, http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(notFound))
	rec = do(t, router, http.MethodGet, "/metrics")
	assert.Contains(t, rec.Body.String(), `route="unmatched"`)
}

func TestOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{})

	rec := do(t, router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = do(t, router, http.MethodGet, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())

	do(t, router, http.MethodGet, "/api/articles/1")
	rec = do(t, router, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), "content_lookups_total")
}

func TestReady_NotReady(t *testing.T) {
	router := newTestRouter(t, catalog.Default(), stubReadiness{err: errors.New("static dir missing")})

	rec := do(t, router, http.MethodGet, "/ready")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"not_ready","error":"static dir missing"}`, rec.Body.String())
}

func TestBaseURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/articles/1", nil)
	req.Host = "localhost:5050"
	assert.Equal(t, "http://localhost:5050/", baseURL(req))

	req = httptest.NewRequest(http.MethodGet, "https://news.example.com/api/articles/1", nil)
	assert.Equal(t, "https://news.example.com/", baseURL(req))
}
