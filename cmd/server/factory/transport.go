package factory

import (
	"errors"
	"net/http"

	"github.com/NewsContentAPI/internal/app"
	"github.com/NewsContentAPI/internal/infra/assets"
	transport "github.com/NewsContentAPI/internal/transport/http"
	"github.com/NewsContentAPI/pkg/config"
)

// NewRouter wires the HTTP routes to the content service and asset store.
func NewRouter(
	cfg *config.Config,
	content *app.ContentService,
	store *assets.FileStore,
	readiness *app.ReadinessChecker,
) (http.Handler, error) {
	if cfg.AllowedOrigin == "" {
		return nil, errors.New("CORS allowed origin not configured")
	}
	return transport.NewRouter(cfg, content, store, readiness), nil
}
