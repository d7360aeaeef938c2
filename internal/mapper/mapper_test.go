package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
	api "github.com/blackgirlbytes/github-calendar-next/internal/oapi"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestFromEventParams(t *testing.T) {
	q, err := FromEventParams(strPtr(" acme "), intPtr(3), strPtr("2025-08-01T00:00:00.000Z"))
	require.NoError(t, err)
	require.Equal(t, "acme", q.Org)
	require.Equal(t, 3, q.ProjectNumber)
	require.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), q.Since)

	q, err = FromEventParams(nil, nil, strPtr("2025-08-01"))
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), q.Since)

	q, err = FromEventParams(nil, nil, nil)
	require.NoError(t, err)
	require.True(t, q.Since.IsZero())

	_, err = FromEventParams(nil, intPtr(0), nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = FromEventParams(nil, nil, strPtr("last week"))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestFromCreateIssueRequest(t *testing.T) {
	draft, err := FromCreateIssueRequest(api.CreateIssueRequest{
		Title:     "Fix bug",
		StartDate: strPtr("2025-08-01"),
		EndDate:   strPtr(""),
	})
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), *draft.StartDate)
	require.Nil(t, draft.EndDate)
	require.Nil(t, draft.Labels)
	require.Nil(t, draft.Assignees)

	_, err = FromCreateIssueRequest(api.CreateIssueRequest{Title: "x", EndDate: strPtr("next week")})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestFromCreateIssueRequestObjectRefs(t *testing.T) {
	var body api.CreateIssueRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "Fix bug",
		"labels": [{"name": "bug", "color": "d73a4a"}, "docs", {"name": " "}],
		"assignees": [{"login": "alice", "avatar_url": "https://a"}, "bob"]
	}`), &body))

	draft, err := FromCreateIssueRequest(body)
	require.NoError(t, err)
	require.Equal(t, []string{"bug", "docs"}, draft.Labels)
	require.Equal(t, []string{"alice", "bob"}, draft.Assignees)
}

func TestFromUpdateIssueRequest(t *testing.T) {
	_, err := FromUpdateIssueRequest(api.UpdateIssueRequest{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	upd, err := FromUpdateIssueRequest(api.UpdateIssueRequest{
		Id:                12,
		Status:            strPtr("Closed"),
		ExpectedUpdatedAt: strPtr("2025-08-05T10:00:00Z"),
	})
	require.NoError(t, err)
	require.Equal(t, 12, upd.Number)
	require.Equal(t, entities.StateClosed, *upd.State)
	require.Equal(t, time.Date(2025, 8, 5, 10, 0, 0, 0, time.UTC), upd.ExpectedUpdatedAt.UTC())
	require.Nil(t, upd.Labels)
	require.Nil(t, upd.Assignees)

	_, err = FromUpdateIssueRequest(api.UpdateIssueRequest{Id: 1, ExpectedUpdatedAt: strPtr("yesterday")})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestFromUpdateIssueRequestClearsLists(t *testing.T) {
	upd, err := FromUpdateIssueRequest(api.UpdateIssueRequest{
		Id:        4,
		Labels:    &[]api.LabelRef{},
		Assignees: &[]api.AssigneeRef{{Login: "carol", AvatarURL: "https://c"}},
	})
	require.NoError(t, err)
	require.NotNil(t, upd.Labels)
	require.Empty(t, upd.Labels)
	require.Equal(t, []string{"carol"}, upd.Assignees)
}

func TestFromProjectFieldsRequest(t *testing.T) {
	_, err := FromProjectFieldsRequest(api.ProjectFieldsRequest{StartDate: strPtr("2025-08-01")})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	upd, err := FromProjectFieldsRequest(api.ProjectFieldsRequest{IssueNumber: 5, EndDate: strPtr("2025-08-09T00:00:00Z")})
	require.NoError(t, err)
	require.Equal(t, 5, upd.IssueNumber)
	require.Nil(t, upd.StartDate)
	require.Equal(t, time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC), *upd.EndDate)
}

func TestToCalendarPage(t *testing.T) {
	status := "Done"
	page := ToCalendarPage(entities.CalendarPage{
		Events: []entities.RenderedEvent{{
			CalendarEvent: entities.CalendarEvent{
				ID:            "issue-7",
				Title:         "Ship",
				StartDate:     time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
				URL:           "https://github.com/o/r/issues/7",
				Labels:        []entities.Label{{Name: "bug", Color: "d73a4a"}},
				Assignees:     []entities.Assignee{{Login: "alice", AvatarURL: "https://a"}},
				Status:        entities.StateClosed,
				ProjectStatus: &status,
			},
			Color:           entities.ColorPair{Background: "#fff", Border: "#000"},
			TextColor:       "#111",
			PrimaryAssignee: "alice",
			Completed:       true,
			Order:           2,
		}},
		Assignees: []entities.AssigneeSummary{{Login: "alice", AvatarURL: "https://a", Count: 1}},
	})

	require.Len(t, page.Events, 1)
	ev := page.Events[0]
	require.Equal(t, "issue-7", ev.Id)
	require.Equal(t, api.Closed, ev.Status)
	require.Equal(t, "Done", *ev.ProjectStatus)
	require.Equal(t, []api.Label{{Name: "bug", Color: "d73a4a"}}, ev.Labels)
	require.Equal(t, "#fff", ev.Color.Background)
	require.True(t, ev.Completed)
	require.Equal(t, 2, ev.Order)
	require.Equal(t, []api.AssigneeSummary{{Login: "alice", AvatarUrl: "https://a", Count: 1}}, page.Assignees)
}

func TestToIssueResponse(t *testing.T) {
	res := ToIssueResponse(entities.Issue{ID: "issue-3", Number: 3, Status: entities.StateOpen, Warnings: []string{"labels"}})
	require.True(t, res.Success)
	require.Equal(t, api.Open, res.Issue.Status)
	require.Nil(t, res.Issue.Body)
	require.Equal(t, []string{"labels"}, *res.Issue.Warnings)
}

func TestToProjectFieldsResponse(t *testing.T) {
	res := ToProjectFieldsResponse(entities.DateFieldsResult{
		ProjectItemID: "PVTI_1",
		Updates:       []entities.FieldUpdateResult{{Field: "Start date", Value: "2025-08-01"}},
	})
	require.True(t, res.Success)
	require.Equal(t, "PVTI_1", res.ProjectItemId)
	require.Equal(t, []api.FieldUpdate{{Field: "Start date", Value: "2025-08-01"}}, res.Updates)
}

func TestParseAssignees(t *testing.T) {
	require.Nil(t, ParseAssignees(nil))
	require.Nil(t, ParseAssignees(strPtr("")))
	require.Equal(t, []string{"alice", "unassigned"}, ParseAssignees(strPtr(" alice, ,unassigned")))
}
