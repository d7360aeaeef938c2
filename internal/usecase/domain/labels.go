package domain

import (
	"context"

	"github.com/blackgirlbytes/github-calendar-next/internal/calendar"
	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

// Labels lists the repository labels with normalized colors.
func (u *Usecase) Labels(ctx context.Context) ([]entities.RepoLabel, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	labels, err := u.repo.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	for i := range labels {
		labels[i].Color = calendar.NormalizeColor(labels[i].Color)
	}
	return labels, nil
}
