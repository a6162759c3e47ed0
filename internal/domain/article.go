package domain

import "context"

// Article is a news item as stored in the catalog. Image and Logo are
// filenames relative to the static asset root.
type Article struct {
	ID         string
	Title      string
	Subtitle   string
	Category   string
	Source     string
	Date       string // already formatted for display, e.g. "April 12, 2025"
	Image      string
	Logo       string
	Paragraphs []string
}

// Summary returns the short text shown in list and join views.
func (a *Article) Summary() string {
	return a.Subtitle
}

// ArticleDetail is the full article returned by the article endpoint.
type ArticleDetail struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	Category         string   `json:"category"`
	Source           string   `json:"source"`
	Date             string   `json:"date"`
	ImageURL         string   `json:"image_url"`
	PublisherLogoURL string   `json:"publisher_logo_url"`
	Content          []string `json:"content"`
}

// FeaturedArticle is the list projection used by the featured feed.
type FeaturedArticle struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Source     string `json:"source"`
	Category   string `json:"category"`
	ImageURL   string `json:"imageUrl"`
	SourceLogo string `json:"sourceLogo"`
}

// NewsItem is the headline-only projection of the news list.
type NewsItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

// ArticleSummary is the article header embedded in a poll.
type ArticleSummary struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	LogoURL  string `json:"logo_url"`
}

// NewArticleDetail projects a into its detail view, resolving asset URLs against baseURL.
func NewArticleDetail(a *Article, baseURL string) ArticleDetail {
	content := make([]string, len(a.Paragraphs))
	copy(content, a.Paragraphs)
	return ArticleDetail{
		ID:               a.ID,
		Title:            a.Title,
		Subtitle:         a.Subtitle,
		Category:         a.Category,
		Source:           a.Source,
		Date:             a.Date,
		ImageURL:         AssetURL(baseURL, a.Image),
		PublisherLogoURL: AssetURL(baseURL, a.Logo),
		Content:          content,
	}
}

func NewFeaturedArticle(a *Article, baseURL string) FeaturedArticle {
	return FeaturedArticle{
		ID:         a.ID,
		Title:      a.Title,
		Summary:    a.Summary(),
		Source:     a.Source,
		Category:   a.Category,
		ImageURL:   AssetURL(baseURL, a.Image),
		SourceLogo: AssetURL(baseURL, a.Logo),
	}
}

func NewNewsItem(a *Article) NewsItem {
	return NewsItem{Title: a.Title, Source: a.Source}
}

func NewArticleSummary(a *Article, baseURL string) ArticleSummary {
	return ArticleSummary{
		Title:    a.Title,
		Summary:  a.Summary(),
		Source:   a.Source,
		Category: a.Category,
		ImageURL: AssetURL(baseURL, a.Image),
		LogoURL:  AssetURL(baseURL, a.Logo),
	}
}

// ArticleReader handles article retrieval.
type ArticleReader interface {
	GetArticle(ctx context.Context, id string) (*Article, error)
	// ListArticles returns every article in table order.
	ListArticles(ctx context.Context) []Article
}

// PollReader handles poll retrieval.
type PollReader interface {
	GetPoll(ctx context.Context, id string) (*Poll, error)
}

// DiscussionReader handles discussion retrieval.
type DiscussionReader interface {
	GetDiscussion(ctx context.Context, articleID string) (*Discussion, error)
}

// Catalog is the composite read side of the content tables.
type Catalog interface {
	ArticleReader
	PollReader
	DiscussionReader
}
