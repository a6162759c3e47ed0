package mocks

import (
	"context"

	"github.com/NewsContentAPI/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalog struct {
	mock.Mock
}

var _ domain.Catalog = (*MockCatalog)(nil)

func (m *MockCatalog) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockCatalog) ListArticles(ctx context.Context) []domain.Article {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Article)
}

func (m *MockCatalog) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Poll), args.Error(1)
}

func (m *MockCatalog) GetDiscussion(ctx context.Context, articleID string) (*domain.Discussion, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discussion), args.Error(1)
}
