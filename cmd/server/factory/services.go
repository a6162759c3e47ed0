package factory

import (
	"errors"

	"github.com/NewsContentAPI/internal/app"
	"github.com/NewsContentAPI/internal/domain"
	"github.com/NewsContentAPI/internal/infra/assets"
	"github.com/NewsContentAPI/internal/infra/catalog"
)

// NewContentService creates the content lookup service.
func NewContentService(c domain.Catalog) (*app.ContentService, error) {
	if c == nil {
		return nil, errors.New("catalog is nil")
	}
	return app.NewContentService(c), nil
}

// NewReadinessChecker checks the asset root and the catalog's poll references.
func NewReadinessChecker(store *assets.FileStore, c *catalog.Catalog) (*app.ReadinessChecker, error) {
	if store == nil {
		return nil, errors.New("asset store is nil")
	}
	if c == nil {
		return nil, errors.New("catalog is nil")
	}
	return app.NewReadinessChecker(store, c), nil
}
