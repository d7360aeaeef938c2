package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	gh "github.com/google/go-github/v66/github"
	"github.com/shurcooL/githubv4"
)

const (
	searchPageSize = 100
	itemsPageSize  = 100
)

type pageInfo struct {
	HasNextPage bool
	EndCursor   string
}

type projectItemsQuery struct {
	Organization *struct {
		ProjectV2 *struct {
			ID    string
			Title string
			Items struct {
				PageInfo pageInfo
				Nodes    []projectItemNode
			} `graphql:"items(first: $pageSize, after: $cursor)"`
		} `graphql:"projectV2(number: $projectNumber)"`
	} `graphql:"organization(login: $org)"`
}

type projectItemNode struct {
	ID      string
	Type    string
	Content struct {
		Issue issueNode `graphql:"... on Issue"`
	}
	FieldValues struct {
		Nodes []fieldValueNode
	} `graphql:"fieldValues(first: 20)"`
}

type issueNode struct {
	ID        string
	Number    int
	Title     string
	Body      string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
	URL       string
	Labels    struct {
		Nodes []struct {
			Name  string
			Color string
		}
	} `graphql:"labels(first: 20)"`
	Assignees struct {
		Nodes []struct {
			Login     string
			AvatarURL string
		}
	} `graphql:"assignees(first: 10)"`
	Milestone *struct {
		Title string
		DueOn *time.Time
	}
}

type fieldName struct {
	Common struct {
		Name string
	} `graphql:"... on ProjectV2FieldCommon"`
}

type fieldValueNode struct {
	Typename  string `graphql:"__typename"`
	DateValue struct {
		Field fieldName
		Date  *string
	} `graphql:"... on ProjectV2ItemFieldDateValue"`
	TextValue struct {
		Field fieldName
		Text  *string
	} `graphql:"... on ProjectV2ItemFieldTextValue"`
	SingleSelectValue struct {
		Field fieldName
		Name  *string
	} `graphql:"... on ProjectV2ItemFieldSingleSelectValue"`
	NumberValue struct {
		Field  fieldName
		Number *float64
	} `graphql:"... on ProjectV2ItemFieldNumberValue"`
}

// ListProjectItems pages through the issues of a project board.
func (g *GitHub) ListProjectItems(ctx context.Context, org string, projectNumber int) ([]entities.TrackerItem, error) {
	items := make([]entities.TrackerItem, 0)
	vars := map[string]any{
		"org":           githubv4.String(org),
		"projectNumber": githubv4.Int(projectNumber),
		"pageSize":      githubv4.Int(itemsPageSize),
		"cursor":        (*githubv4.String)(nil),
	}

	for {
		var q projectItemsQuery
		if err := g.gql.Query(ctx, &q, vars); err != nil {
			g.log.Errorw("failed to query project items", "error", err, "org", org, "project", projectNumber)
			return nil, graphQLError("list project items", err, entities.ErrProjectNotFound)
		}
		if q.Organization == nil || q.Organization.ProjectV2 == nil {
			return nil, fmt.Errorf("%w: project %d of %s", entities.ErrProjectNotFound, projectNumber, org)
		}

		page := q.Organization.ProjectV2.Items
		for _, node := range page.Nodes {
			if githubv4.ProjectV2ItemType(node.Type) != githubv4.ProjectV2ItemTypeIssue || node.Content.Issue.Number == 0 {
				continue
			}
			items = append(items, node.toItem())
		}

		if !page.PageInfo.HasNextPage || page.PageInfo.EndCursor == "" {
			break
		}
		vars["cursor"] = githubv4.NewString(githubv4.String(page.PageInfo.EndCursor))
	}

	g.log.Infow("project items fetched", "org", org, "project", projectNumber, "count", len(items))
	return items, nil
}

func (n projectItemNode) toItem() entities.TrackerItem {
	c := n.Content.Issue
	item := entities.TrackerItem{
		ProjectItemID: n.ID,
		NodeID:        c.ID,
		Number:        c.Number,
		Title:         c.Title,
		Body:          c.Body,
		State:         entities.IssueState(strings.ToLower(c.State)),
		URL:           c.URL,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	for _, l := range c.Labels.Nodes {
		item.Labels = append(item.Labels, entities.Label{Name: l.Name, Color: l.Color})
	}
	for _, a := range c.Assignees.Nodes {
		item.Assignees = append(item.Assignees, entities.Assignee{Login: a.Login, AvatarURL: a.AvatarURL})
	}
	if c.Milestone != nil {
		item.Milestone = &entities.Milestone{Title: c.Milestone.Title, DueOn: c.Milestone.DueOn}
	}
	for _, fv := range n.FieldValues.Nodes {
		if v, ok := fv.toFieldValue(); ok {
			item.FieldValues = append(item.FieldValues, v)
		}
	}
	return item
}

func (f fieldValueNode) toFieldValue() (entities.FieldValue, bool) {
	var v entities.FieldValue
	switch f.Typename {
	case "ProjectV2ItemFieldDateValue":
		if f.DateValue.Date == nil {
			return v, false
		}
		v.FieldName = f.DateValue.Field.Common.Name
		v.Kind, v.Date = entities.FieldValueDate, *f.DateValue.Date
	case "ProjectV2ItemFieldTextValue":
		if f.TextValue.Text == nil {
			return v, false
		}
		v.FieldName = f.TextValue.Field.Common.Name
		v.Kind, v.Text = entities.FieldValueText, *f.TextValue.Text
	case "ProjectV2ItemFieldSingleSelectValue":
		if f.SingleSelectValue.Name == nil {
			return v, false
		}
		v.FieldName = f.SingleSelectValue.Field.Common.Name
		v.Kind, v.Option = entities.FieldValueSingleSelect, *f.SingleSelectValue.Name
	case "ProjectV2ItemFieldNumberValue":
		if f.NumberValue.Number == nil {
			return v, false
		}
		v.FieldName = f.NumberValue.Field.Common.Name
		v.Kind, v.Number = entities.FieldValueNumber, *f.NumberValue.Number
	default:
		return v, false
	}
	return v, true
}

// SearchIssues finds issues of org through the search API. Items found this
// way carry no project field values.
func (g *GitHub) SearchIssues(ctx context.Context, org, label string, since time.Time) ([]entities.TrackerItem, error) {
	q := searchQuery(org, label, since)
	items := make([]entities.TrackerItem, 0)
	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: searchPageSize, Page: 1}}

	for {
		res, resp, err := g.rest.Search.Issues(ctx, q, opts)
		if err != nil {
			g.log.Errorw("failed to search issues", "error", err, "query", q, "page", opts.Page)
			return nil, restError("search issues", err, entities.ErrNotFound)
		}
		for _, issue := range res.Issues {
			if issue.IsPullRequest() {
				continue
			}
			items = append(items, itemFromIssue(issue))
		}
		if len(res.Issues) < searchPageSize || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	g.log.Infow("issues found by search", "query", q, "count", len(items))
	return items, nil
}

func searchQuery(org, label string, since time.Time) string {
	parts := []string{"org:" + org}
	if label != "" {
		parts = append(parts, fmt.Sprintf("label:%q", label))
	}
	parts = append(parts, "type:issue")
	if !since.IsZero() {
		parts = append(parts, "created:>="+since.UTC().Format("2006-01-02"))
	}
	return strings.Join(parts, " ")
}

func itemFromIssue(issue *gh.Issue) entities.TrackerItem {
	item := entities.TrackerItem{
		NodeID:    issue.GetNodeID(),
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     entities.IssueState(issue.GetState()),
		URL:       issue.GetHTMLURL(),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
	}
	for _, l := range issue.Labels {
		item.Labels = append(item.Labels, entities.Label{Name: l.GetName(), Color: l.GetColor()})
	}
	for _, a := range issue.Assignees {
		item.Assignees = append(item.Assignees, entities.Assignee{Login: a.GetLogin(), AvatarURL: a.GetAvatarURL()})
	}
	if m := issue.Milestone; m != nil {
		ms := &entities.Milestone{Title: m.GetTitle()}
		if m.DueOn != nil {
			due := m.DueOn.Time
			ms.DueOn = &due
		}
		item.Milestone = ms
	}
	return item
}
