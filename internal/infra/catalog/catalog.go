// Package catalog holds the in-memory content tables served by the API.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/NewsContentAPI/internal/domain"
)

// Catalog is a read-only set of article, poll and discussion tables.
// It is built once and never mutated, so it is safe for concurrent use.
type Catalog struct {
	articles    map[string]domain.Article
	order       []string
	polls       map[string]domain.Poll
	discussions map[string]domain.Discussion
}

var _ domain.Catalog = (*Catalog)(nil)

// New builds a catalog. Articles keep the order they are given in.
// Duplicate identifiers are rejected; dangling poll references are not.
func New(articles []domain.Article, polls []domain.Poll, discussions []domain.Discussion) (*Catalog, error) {
	c := &Catalog{
		articles:    make(map[string]domain.Article, len(articles)),
		order:       make([]string, 0, len(articles)),
		polls:       make(map[string]domain.Poll, len(polls)),
		discussions: make(map[string]domain.Discussion, len(discussions)),
	}

	for _, a := range articles {
		if _, exists := c.articles[a.ID]; exists {
			return nil, fmt.Errorf("duplicate article id %q", a.ID)
		}
		c.articles[a.ID] = a
		c.order = append(c.order, a.ID)
	}
	for _, p := range polls {
		if _, exists := c.polls[p.ID]; exists {
			return nil, fmt.Errorf("duplicate poll id %q", p.ID)
		}
		c.polls[p.ID] = p
	}
	for _, d := range discussions {
		if _, exists := c.discussions[d.ArticleID]; exists {
			return nil, fmt.Errorf("duplicate discussion for article %q", d.ArticleID)
		}
		c.discussions[d.ArticleID] = d
	}
	return c, nil
}

// Default returns the built-in content.
func Default() *Catalog {
	c, err := New(defaultArticles, defaultPolls, defaultDiscussions)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in content: %v", err))
	}
	return c
}

func (c *Catalog) GetArticle(_ context.Context, id string) (*domain.Article, error) {
	a, ok := c.articles[id]
	if !ok {
		return nil, fmt.Errorf("article %q: %w", id, domain.ErrNotFound)
	}
	return &a, nil
}

func (c *Catalog) ListArticles(_ context.Context) []domain.Article {
	out := make([]domain.Article, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.articles[id])
	}
	return out
}

func (c *Catalog) GetPoll(_ context.Context, id string) (*domain.Poll, error) {
	p, ok := c.polls[id]
	if !ok {
		return nil, fmt.Errorf("poll %q: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

func (c *Catalog) GetDiscussion(_ context.Context, articleID string) (*domain.Discussion, error) {
	d, ok := c.discussions[articleID]
	if !ok {
		return nil, fmt.Errorf("discussion %q: %w", articleID, domain.ErrNotFound)
	}
	return &d, nil
}

// DanglingPolls returns the sorted ids of polls whose article does not exist.
func (c *Catalog) DanglingPolls() []string {
	var ids []string
	for id, p := range c.polls {
		if _, ok := c.articles[p.ArticleID]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Assets returns every filename referenced by the tables, sorted.
func (c *Catalog) Assets() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, id := range c.order {
		a := c.articles[id]
		add(a.Image)
		add(a.Logo)
	}
	for _, d := range c.discussions {
		add(d.Article.Image)
		add(d.Article.Logo)
	}
	sort.Strings(names)
	return names
}
