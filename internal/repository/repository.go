// Package repository provides factory for tracker backends.
package repository

import (
	"context"
	"fmt"

	"github.com/blackgirlbytes/github-calendar-next/config"
	"github.com/blackgirlbytes/github-calendar-next/internal/repository/github"

	"go.uber.org/zap"
)

// Repository aggregates all tracker interfaces.
type Repository interface {
	LifecycleInterface
	ItemInterface
	IssueInterface
	ProjectInterface
}

// New constructs tracker backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "github":
		return github.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
