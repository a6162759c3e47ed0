package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/NewsContentAPI/internal/domain"
	"github.com/NewsContentAPI/internal/infra/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "content-api"

// ContentService answers read-only lookups against the catalog. Every method
// takes the request base URL (scheme://host/) used to build asset URLs.
type ContentService struct {
	catalog domain.Catalog
}

func NewContentService(catalog domain.Catalog) *ContentService {
	return &ContentService{catalog: catalog}
}

// GetArticle returns the article with absolute image and logo URLs.
func (s *ContentService) GetArticle(ctx context.Context, baseURL, id string) (domain.ArticleDetail, error) {
	ctx, span := startSpan(ctx, "GetArticle", attribute.String("article.id", id))
	defer span.End()

	a, err := s.catalog.GetArticle(ctx, id)
	if err != nil {
		recordLookup(span, "article", err)
		return domain.ArticleDetail{}, err
	}
	recordLookup(span, "article", nil)
	return domain.NewArticleDetail(a, baseURL), nil
}

// ListFeaturedArticles returns every article in table order.
func (s *ContentService) ListFeaturedArticles(ctx context.Context, baseURL string) []domain.FeaturedArticle {
	ctx, span := startSpan(ctx, "ListFeaturedArticles")
	defer span.End()

	articles := s.catalog.ListArticles(ctx)
	out := make([]domain.FeaturedArticle, 0, len(articles))
	for i := range articles {
		out = append(out, domain.NewFeaturedArticle(&articles[i], baseURL))
	}

	span.SetAttributes(attribute.Int("articles.count", len(out)))
	recordLookup(span, "featured", nil)
	return out
}

// ListNews returns the headline and source of every article in table order.
func (s *ContentService) ListNews(ctx context.Context) []domain.NewsItem {
	ctx, span := startSpan(ctx, "ListNews")
	defer span.End()

	articles := s.catalog.ListArticles(ctx)
	out := make([]domain.NewsItem, 0, len(articles))
	for i := range articles {
		out = append(out, domain.NewNewsItem(&articles[i]))
	}

	span.SetAttributes(attribute.Int("articles.count", len(out)))
	recordLookup(span, "news", nil)
	return out
}

// GetPoll returns the poll joined with its article. A poll whose article is
// missing yields domain.ErrDanglingReference rather than ErrNotFound.
func (s *ContentService) GetPoll(ctx context.Context, baseURL, id string) (domain.PollView, error) {
	ctx, span := startSpan(ctx, "GetPoll", attribute.String("poll.id", id))
	defer span.End()

	p, err := s.catalog.GetPoll(ctx, id)
	if err != nil {
		recordLookup(span, "poll", err)
		return domain.PollView{}, err
	}

	a, err := s.catalog.GetArticle(ctx, p.ArticleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("poll %q references article %q: %w", p.ID, p.ArticleID, domain.ErrDanglingReference)
			slog.Error("Poll references missing article", "poll_id", p.ID, "article_id", p.ArticleID)
		}
		recordLookup(span, "poll", err)
		return domain.PollView{}, err
	}

	recordLookup(span, "poll", nil)
	return domain.NewPollView(p, a, baseURL), nil
}

// GetDiscussion returns the discussion for an article id. Unknown ids return
// the empty shell instead of an error, unlike articles and polls.
func (s *ContentService) GetDiscussion(ctx context.Context, baseURL string, id int) domain.DiscussionView {
	ctx, span := startSpan(ctx, "GetDiscussion", attribute.Int("discussion.id", id))
	defer span.End()

	d, err := s.catalog.GetDiscussion(ctx, strconv.Itoa(id))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("Discussion lookup failed, returning empty thread", "discussion_id", id, "error", err)
		}
		recordLookup(span, "discussion", err)
		return domain.EmptyDiscussion()
	}

	recordLookup(span, "discussion", nil)
	return domain.NewDiscussionView(d, baseURL)
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "ContentService."+name, trace.WithAttributes(attrs...))
}

func recordLookup(span trace.Span, kind string, err error) {
	result := lookupResult(err)
	metrics.ContentLookups.WithLabelValues(kind, result).Inc()
	span.SetAttributes(attribute.String("lookup.result", result))
	if err != nil && result != "not_found" {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

func lookupResult(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDanglingReference):
		return "dangling"
	default:
		return "error"
	}
}
