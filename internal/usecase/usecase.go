package usecase

import (
	"context"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/config"
	"github.com/blackgirlbytes/github-calendar-next/internal/repository"
	"github.com/blackgirlbytes/github-calendar-next/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	EventUsecaseInterface
	IssueUsecaseInterface
	LabelUsecaseInterface
	ProjectUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	board config.GitHubConfig,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, board)
}
