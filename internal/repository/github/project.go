package github

import (
	"context"
	"fmt"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	"github.com/shurcooL/githubv4"
)

// ProjectID returns the node id of the configured project board.
func (g *GitHub) ProjectID(ctx context.Context) (string, error) {
	if g.cfg.ProjectID != "" {
		return g.cfg.ProjectID, nil
	}

	var q struct {
		Organization *struct {
			ProjectV2 *struct {
				ID string
			} `graphql:"projectV2(number: $projectNumber)"`
		} `graphql:"organization(login: $org)"`
	}
	vars := map[string]any{
		"org":           githubv4.String(g.cfg.Org),
		"projectNumber": githubv4.Int(g.cfg.ProjectNumber),
	}
	if err := g.gql.Query(ctx, &q, vars); err != nil {
		return "", graphQLError("resolve project id", err, entities.ErrProjectNotFound)
	}
	if q.Organization == nil || q.Organization.ProjectV2 == nil {
		return "", fmt.Errorf("%w: project %d of %s", entities.ErrProjectNotFound, g.cfg.ProjectNumber, g.cfg.Org)
	}
	return q.Organization.ProjectV2.ID, nil
}

// FindProjectItem returns the item linking issueNumber to the configured project.
func (g *GitHub) FindProjectItem(ctx context.Context, issueNumber int) (*entities.ProjectItemRef, error) {
	var q struct {
		Repository *struct {
			Issue *struct {
				ID           string
				Number       int
				ProjectItems struct {
					Nodes []struct {
						ID      string
						Project struct {
							ID     string
							Title  string
							Number int
						}
					}
				} `graphql:"projectItems(first: 20)"`
			} `graphql:"issue(number: $issueNumber)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}
	vars := map[string]any{
		"owner":       githubv4.String(g.cfg.Owner),
		"repo":        githubv4.String(g.cfg.Repo),
		"issueNumber": githubv4.Int(issueNumber),
	}
	if err := g.gql.Query(ctx, &q, vars); err != nil {
		g.log.Errorw("failed to query project items of issue", "error", err, "number", issueNumber)
		return nil, graphQLError(fmt.Sprintf("find project item of #%d", issueNumber), err, entities.ErrIssueNotFound)
	}
	if q.Repository == nil || q.Repository.Issue == nil {
		return nil, fmt.Errorf("%w: #%d", entities.ErrIssueNotFound, issueNumber)
	}

	for _, node := range q.Repository.Issue.ProjectItems.Nodes {
		if node.Project.Number == g.cfg.ProjectNumber {
			return &entities.ProjectItemRef{
				ItemID:        node.ID,
				ProjectID:     node.Project.ID,
				ProjectNumber: node.Project.Number,
				ProjectTitle:  node.Project.Title,
			}, nil
		}
	}

	g.log.Warnw("issue not linked to project", "number", issueNumber, "project", g.cfg.ProjectNumber,
		"linked", len(q.Repository.Issue.ProjectItems.Nodes))
	return nil, fmt.Errorf("%w: issue #%d is not in project %d", entities.ErrNotInProject, issueNumber, g.cfg.ProjectNumber)
}

// ListProjectFields returns the field definitions of a project.
func (g *GitHub) ListProjectFields(ctx context.Context, projectID string) ([]entities.ProjectField, error) {
	var q struct {
		Node *struct {
			ProjectV2 struct {
				ID     string
				Fields struct {
					Nodes []projectFieldNode
				} `graphql:"fields(first: 50)"`
			} `graphql:"... on ProjectV2"`
		} `graphql:"node(id: $projectId)"`
	}
	if err := g.gql.Query(ctx, &q, map[string]any{"projectId": githubv4.ID(projectID)}); err != nil {
		g.log.Errorw("failed to query project fields", "error", err, "project_id", projectID)
		return nil, graphQLError("list project fields", err, entities.ErrProjectNotFound)
	}
	if q.Node == nil || q.Node.ProjectV2.ID == "" {
		return nil, fmt.Errorf("%w: %s", entities.ErrProjectNotFound, projectID)
	}

	fields := make([]entities.ProjectField, 0, len(q.Node.ProjectV2.Fields.Nodes))
	for _, n := range q.Node.ProjectV2.Fields.Nodes {
		if n.Common.ID == "" {
			continue
		}
		f := entities.ProjectField{ID: n.Common.ID, Name: n.Common.Name, DataType: string(n.Common.DataType)}
		for _, o := range n.SingleSelect.Options {
			f.Options = append(f.Options, entities.ProjectFieldOption{ID: o.ID, Name: o.Name, Color: o.Color})
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// SetDateField writes a date value of a project item.
func (g *GitHub) SetDateField(ctx context.Context, projectID, itemID, fieldID string, date time.Time) error {
	var m struct {
		UpdateProjectV2ItemFieldValue struct {
			ProjectV2Item struct {
				ID string
			}
		} `graphql:"updateProjectV2ItemFieldValue(input: $input)"`
	}
	input := githubv4.UpdateProjectV2ItemFieldValueInput{
		ProjectID: githubv4.ID(projectID),
		ItemID:    githubv4.ID(itemID),
		FieldID:   githubv4.ID(fieldID),
		Value: githubv4.ProjectV2FieldValue{
			Date: githubv4.NewDate(githubv4.Date{Time: dateOnly(date)}),
		},
	}
	if err := g.gql.Mutate(ctx, &m, input, nil); err != nil {
		g.log.Errorw("failed to update project field", "error", err, "item_id", itemID, "field_id", fieldID)
		return graphQLError("update project field", err, entities.ErrNotInProject)
	}
	g.log.Infow("project field updated", "item_id", itemID, "field_id", fieldID, "date", date.Format("2006-01-02"))
	return nil
}

type projectFieldNode struct {
	Typename string `graphql:"__typename"`
	Common   struct {
		ID       string
		Name     string
		DataType githubv4.ProjectV2FieldType
	} `graphql:"... on ProjectV2FieldCommon"`
	SingleSelect struct {
		Options []struct {
			ID    string
			Name  string
			Color string
		}
	} `graphql:"... on ProjectV2SingleSelectField"`
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
