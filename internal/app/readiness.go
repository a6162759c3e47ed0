package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// AssetRoot is the static asset directory as seen by the readiness check.
type AssetRoot interface {
	Check() error
}

// ReferenceAuditor reports polls whose article reference does not resolve.
type ReferenceAuditor interface {
	DanglingPolls() []string
}

type ReadinessChecker struct {
	assets  AssetRoot
	auditor ReferenceAuditor
}

func NewReadinessChecker(assets AssetRoot, auditor ReferenceAuditor) *ReadinessChecker {
	return &ReadinessChecker{
		assets:  assets,
		auditor: auditor,
	}
}

// Check returns nil when the asset root is readable and every poll joins to an article.
func (c *ReadinessChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.assets.Check(); err != nil {
		return fmt.Errorf("assets not ready: %w", err)
	}
	if dangling := c.auditor.DanglingPolls(); len(dangling) > 0 {
		return fmt.Errorf("polls with missing articles: %s", strings.Join(dangling, ","))
	}
	return nil
}

// Report runs Check once and logs the outcome. It never fails startup:
// the service still answers article and discussion lookups without assets.
func (c *ReadinessChecker) Report(ctx context.Context) {
	if err := c.Check(ctx); err != nil {
		slog.Warn("Service not ready", "error", err)
		return
	}
	slog.Info("Service is ready")
}
