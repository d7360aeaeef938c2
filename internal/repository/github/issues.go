package github

import (
	"context"
	"strconv"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	gh "github.com/google/go-github/v66/github"
)

const labelsPageSize = 100

// CreateIssue opens an issue in the configured repository.
func (g *GitHub) CreateIssue(ctx context.Context, title, body string, assignees []string) (*entities.Issue, error) {
	req := &gh.IssueRequest{
		Title:     gh.String(title),
		Body:      gh.String(body),
		Assignees: &assignees,
	}
	if assignees == nil {
		req.Assignees = &[]string{}
	}

	issue, _, err := g.rest.Issues.Create(ctx, g.cfg.Owner, g.cfg.Repo, req)
	if err != nil {
		g.log.Errorw("failed to create issue", "error", err, "title", title)
		return nil, restError("create issue", err, entities.ErrNotFound)
	}

	g.log.Infow("issue created", "number", issue.GetNumber(), "url", issue.GetHTMLURL())
	return toIssue(issue), nil
}

// GetIssue reads an issue including its body.
func (g *GitHub) GetIssue(ctx context.Context, number int) (*entities.Issue, error) {
	issue, _, err := g.rest.Issues.Get(ctx, g.cfg.Owner, g.cfg.Repo, number)
	if err != nil {
		g.log.Errorw("failed to get issue", "error", err, "number", number)
		return nil, restError("get issue", err, entities.ErrIssueNotFound)
	}
	return toIssue(issue), nil
}

// EditIssue applies edit in a single update call.
func (g *GitHub) EditIssue(ctx context.Context, number int, edit entities.IssueEdit) (*entities.Issue, error) {
	req := &gh.IssueRequest{
		Title: edit.Title,
		Body:  edit.Body,
	}
	if edit.Labels != nil {
		labels := edit.Labels
		req.Labels = &labels
	}
	if edit.Assignees != nil {
		assignees := edit.Assignees
		req.Assignees = &assignees
	}
	if edit.State != nil {
		req.State = gh.String(string(*edit.State))
	}

	issue, _, err := g.rest.Issues.Edit(ctx, g.cfg.Owner, g.cfg.Repo, number, req)
	if err != nil {
		g.log.Errorw("failed to edit issue", "error", err, "number", number)
		return nil, restError("edit issue", err, entities.ErrIssueNotFound)
	}

	g.log.Infow("issue updated", "number", number, "state", issue.GetState())
	return toIssue(issue), nil
}

// AddLabels attaches labels to an existing issue.
func (g *GitHub) AddLabels(ctx context.Context, number int, labels []string) error {
	if len(labels) == 0 {
		return nil
	}
	if _, _, err := g.rest.Issues.AddLabelsToIssue(ctx, g.cfg.Owner, g.cfg.Repo, number, labels); err != nil {
		g.log.Errorw("failed to add labels", "error", err, "number", number, "labels", labels)
		return restError("add labels", err, entities.ErrIssueNotFound)
	}
	return nil
}

// ListLabels returns the labels of the configured repository.
func (g *GitHub) ListLabels(ctx context.Context) ([]entities.RepoLabel, error) {
	labels := make([]entities.RepoLabel, 0)
	opts := &gh.ListOptions{PerPage: labelsPageSize}

	for {
		page, resp, err := g.rest.Issues.ListLabels(ctx, g.cfg.Owner, g.cfg.Repo, opts)
		if err != nil {
			g.log.Errorw("failed to list labels", "error", err)
			return nil, restError("list labels", err, entities.ErrNotFound)
		}
		for _, l := range page {
			labels = append(labels, entities.RepoLabel{
				Name:        l.GetName(),
				Color:       l.GetColor(),
				Description: l.GetDescription(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return labels, nil
}

func toIssue(issue *gh.Issue) *entities.Issue {
	return &entities.Issue{
		ID:        strconv.Itoa(issue.GetNumber()),
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
		Status:    entities.IssueState(issue.GetState()),
		Body:      issue.GetBody(),
		UpdatedAt: issue.GetUpdatedAt().Time,
	}
}
