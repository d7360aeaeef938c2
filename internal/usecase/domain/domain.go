// Package domain contains application usecases orchestrating the calendar
// and the issue tracker.
package domain

import (
	"context"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/config"
	"github.com/blackgirlbytes/github-calendar-next/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	board   config.GitHubConfig
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	board config.GitHubConfig,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		timeout: timeout,
		board:   board,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
