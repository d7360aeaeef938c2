// Package repository contains the interfaces of the upstream tracker.
package repository

import (
	"context"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

// LifecycleInterface describes client startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ItemInterface lists the items shown on the calendar.
type ItemInterface interface {
	ListProjectItems(ctx context.Context, org string, projectNumber int) ([]entities.TrackerItem, error)
	SearchIssues(ctx context.Context, org, label string, since time.Time) ([]entities.TrackerItem, error)
}

// IssueInterface exposes issue reads and writes on the configured repository.
type IssueInterface interface {
	CreateIssue(ctx context.Context, title, body string, assignees []string) (*entities.Issue, error)
	GetIssue(ctx context.Context, number int) (*entities.Issue, error)
	EditIssue(ctx context.Context, number int, edit entities.IssueEdit) (*entities.Issue, error)
	AddLabels(ctx context.Context, number int, labels []string) error
	ListLabels(ctx context.Context) ([]entities.RepoLabel, error)
}

// ProjectInterface exposes the configured project board.
type ProjectInterface interface {
	ProjectID(ctx context.Context) (string, error)
	FindProjectItem(ctx context.Context, issueNumber int) (*entities.ProjectItemRef, error)
	ListProjectFields(ctx context.Context, projectID string) ([]entities.ProjectField, error)
	SetDateField(ctx context.Context, projectID, itemID, fieldID string, date time.Time) error
}
