// Package factory provides dependency injection constructors for infrastructure components.
package factory

import (
	"errors"

	"github.com/NewsContentAPI/internal/domain"
	"github.com/NewsContentAPI/internal/infra/assets"
	"github.com/NewsContentAPI/internal/infra/catalog"
	"github.com/NewsContentAPI/pkg/config"
	"github.com/NewsContentAPI/pkg/logging"
)

// NewCatalog builds the built-in content tables.
func NewCatalog() *catalog.Catalog {
	return catalog.Default()
}

// NewCatalogReader exposes the catalog through the domain read interface.
func NewCatalogReader(c *catalog.Catalog) (domain.Catalog, error) {
	if c == nil {
		return nil, errors.New("catalog is nil")
	}
	return c, nil
}

// NewAssetStore creates the static file store rooted at the configured directory.
func NewAssetStore(cfg *config.Config) (*assets.FileStore, error) {
	if cfg.StaticDir == "" {
		return nil, errors.New("static dir not configured")
	}
	return assets.NewFileStore(cfg.StaticDir, logging.NewErrorSampler(cfg.AssetMissLogInterval)), nil
}
