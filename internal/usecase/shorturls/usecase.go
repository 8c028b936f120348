// Package shorturls resolves staff-maintained short links to their targets.
package shorturls

import (
	"context"

	"github.com/ocf/api/pkg/logger"
)

// Repository looks up shorturl slugs.
type Repository interface {
	Target(ctx context.Context, slug string) (string, error)
}

// UseCase -.
type UseCase struct {
	repo Repository
	log  logger.Interface
}

// New -.
func New(repo Repository, log logger.Interface) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Bounce returns the redirect target for slug.
func (uc *UseCase) Bounce(ctx context.Context, slug string) (string, error) {
	return uc.repo.Target(ctx, slug)
}
