package usecase

import (
	"context"
	"io"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

// EventUsecaseInterface abstracts calendar reads for delivery layer.
type EventUsecaseInterface interface {
	Events(ctx context.Context, q entities.EventQuery) ([]entities.CalendarEvent, error)
	Calendar(ctx context.Context, q entities.EventQuery, selected []string) (*entities.CalendarPage, error)
	ICal(ctx context.Context, w io.Writer, q entities.EventQuery, selected []string) error
}

// IssueUsecaseInterface abstracts issue writes.
type IssueUsecaseInterface interface {
	CreateIssue(ctx context.Context, draft entities.IssueDraft) (*entities.Issue, error)
	UpdateIssue(ctx context.Context, upd entities.IssueUpdate) (*entities.Issue, error)
}

// LabelUsecaseInterface abstracts label listing.
type LabelUsecaseInterface interface {
	Labels(ctx context.Context) ([]entities.RepoLabel, error)
}

// ProjectUsecaseInterface abstracts project board operations.
type ProjectUsecaseInterface interface {
	UpdateDateFields(ctx context.Context, upd entities.DateFieldsUpdate) (*entities.DateFieldsResult, error)
	StatusFields(ctx context.Context) ([]entities.ProjectField, error)
}
