// Package mapper converts between transport DTOs and domain models.
package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/calendar"
	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
	api "github.com/blackgirlbytes/github-calendar-next/internal/oapi"
)

// FromEventParams builds an entities.EventQuery from the shared query parameters.
func FromEventParams(org *api.OrgQuery, project *api.ProjectQuery, since *api.SinceQuery) (entities.EventQuery, error) {
	var q entities.EventQuery
	if org != nil {
		q.Org = strings.TrimSpace(*org)
	}
	if project != nil {
		if *project <= 0 {
			return q, fmt.Errorf("%w: project must be a positive number", entities.ErrInvalidArgument)
		}
		q.ProjectNumber = *project
	}
	if since != nil && strings.TrimSpace(*since) != "" {
		t, err := calendar.ParseDate(*since)
		if err != nil {
			return q, fmt.Errorf("since: %w", err)
		}
		q.Since = t
	}
	return q, nil
}

// FromCreateIssueRequest builds an entities.IssueDraft from transport DTO.
func FromCreateIssueRequest(src api.CreateIssueRequest) (entities.IssueDraft, error) {
	start, err := optionalDate("startDate", src.StartDate)
	if err != nil {
		return entities.IssueDraft{}, err
	}
	end, err := optionalDate("endDate", src.EndDate)
	if err != nil {
		return entities.IssueDraft{}, err
	}

	return entities.IssueDraft{
		Title:     src.Title,
		Labels:    labelNames(src.Labels),
		Assignees: assigneeLogins(src.Assignees),
		StartDate: start,
		EndDate:   end,
	}, nil
}

// FromUpdateIssueRequest builds an entities.IssueUpdate from transport DTO.
func FromUpdateIssueRequest(src api.UpdateIssueRequest) (entities.IssueUpdate, error) {
	if src.Id <= 0 {
		return entities.IssueUpdate{}, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}

	upd := entities.IssueUpdate{
		Number:    int(src.Id),
		Title:     src.Title,
		Labels:    labelNames(src.Labels),
		Assignees: assigneeLogins(src.Assignees),
	}
	if src.Status != nil {
		state := entities.IssueState(strings.ToLower(strings.TrimSpace(*src.Status)))
		upd.State = &state
	}

	var err error
	if upd.StartDate, err = optionalDate("startDate", src.StartDate); err != nil {
		return entities.IssueUpdate{}, err
	}
	if upd.EndDate, err = optionalDate("endDate", src.EndDate); err != nil {
		return entities.IssueUpdate{}, err
	}
	if src.ExpectedUpdatedAt != nil && *src.ExpectedUpdatedAt != "" {
		t, err := time.Parse(time.RFC3339, *src.ExpectedUpdatedAt)
		if err != nil {
			return entities.IssueUpdate{}, fmt.Errorf("%w: expectedUpdatedAt must be RFC 3339", entities.ErrInvalidArgument)
		}
		upd.ExpectedUpdatedAt = &t
	}
	return upd, nil
}

// FromProjectFieldsRequest builds an entities.DateFieldsUpdate from transport DTO.
func FromProjectFieldsRequest(src api.ProjectFieldsRequest) (entities.DateFieldsUpdate, error) {
	if src.IssueNumber <= 0 {
		return entities.DateFieldsUpdate{}, fmt.Errorf("%w: issueNumber is required", entities.ErrInvalidArgument)
	}
	start, err := optionalDate("startDate", src.StartDate)
	if err != nil {
		return entities.DateFieldsUpdate{}, err
	}
	end, err := optionalDate("endDate", src.EndDate)
	if err != nil {
		return entities.DateFieldsUpdate{}, err
	}
	return entities.DateFieldsUpdate{IssueNumber: int(src.IssueNumber), StartDate: start, EndDate: end}, nil
}

// ToProjectFieldsResponse maps the outcome of a date sync to transport model.
func ToProjectFieldsResponse(res entities.DateFieldsResult) api.ProjectFieldsResponse {
	updates := make([]api.FieldUpdate, 0, len(res.Updates))
	for _, u := range res.Updates {
		updates = append(updates, api.FieldUpdate{Field: u.Field, Value: u.Value})
	}
	return api.ProjectFieldsResponse{
		Success:       true,
		Updates:       updates,
		ProjectItemId: res.ProjectItemID,
	}
}

// ToEventsResponse maps calendar events to transport model.
func ToEventsResponse(events []entities.CalendarEvent) api.EventsResponse {
	out := make([]api.CalendarEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, toCalendarEvent(ev))
	}
	return api.EventsResponse{Events: out}
}

// ToCalendarPage maps a rendered calendar to transport model.
func ToCalendarPage(page entities.CalendarPage) api.CalendarPage {
	events := make([]api.RenderedEvent, 0, len(page.Events))
	for _, ev := range page.Events {
		base := toCalendarEvent(ev.CalendarEvent)
		events = append(events, api.RenderedEvent{
			Assignees:       base.Assignees,
			Color:           toColorPair(ev.Color),
			Completed:       ev.Completed,
			EndDate:         base.EndDate,
			Id:              base.Id,
			Labels:          base.Labels,
			Order:           ev.Order,
			PrimaryAssignee: ev.PrimaryAssignee,
			ProjectStatus:   base.ProjectStatus,
			StartDate:       base.StartDate,
			Status:          base.Status,
			TextColor:       ev.TextColor,
			Title:           base.Title,
			Url:             base.Url,
		})
	}

	assignees := make([]api.AssigneeSummary, 0, len(page.Assignees))
	for _, a := range page.Assignees {
		assignees = append(assignees, api.AssigneeSummary{
			AvatarUrl: a.AvatarURL,
			Color:     toColorPair(a.Color),
			Count:     a.Count,
			Login:     a.Login,
		})
	}
	return api.CalendarPage{Events: events, Assignees: assignees}
}

// ToIssueResponse maps a written issue to transport model.
func ToIssueResponse(issue entities.Issue) api.IssueResponse {
	out := api.Issue{
		Id:     issue.ID,
		Number: issue.Number,
		Status: api.IssueState(issue.Status),
		Title:  issue.Title,
		Url:    issue.URL,
	}
	if issue.Body != "" {
		body := issue.Body
		out.Body = &body
	}
	if len(issue.Warnings) > 0 {
		warnings := append([]string(nil), issue.Warnings...)
		out.Warnings = &warnings
	}
	return api.IssueResponse{Success: true, Issue: out}
}

// ToLabelsResponse maps repository labels to transport model.
func ToLabelsResponse(labels []entities.RepoLabel) api.LabelsResponse {
	out := make([]api.RepoLabel, 0, len(labels))
	for _, l := range labels {
		out = append(out, api.RepoLabel{Color: l.Color, Description: l.Description, Name: l.Name})
	}
	return api.LabelsResponse{Labels: out, Count: len(out)}
}

// ToStatusFieldsResponse maps project fields to transport model.
func ToStatusFieldsResponse(fields []entities.ProjectField) api.StatusFieldsResponse {
	out := make([]api.ProjectField, 0, len(fields))
	for _, f := range fields {
		opts := make([]api.ProjectFieldOption, 0, len(f.Options))
		for _, o := range f.Options {
			opts = append(opts, api.ProjectFieldOption{Color: o.Color, Id: o.ID, Name: o.Name})
		}
		out = append(out, api.ProjectField{Id: f.ID, Name: f.Name, Options: opts})
	}
	return api.StatusFieldsResponse{StatusFields: out, Count: len(out)}
}

// ParseAssignees splits a comma separated assignee selection.
func ParseAssignees(raw *api.AssigneesQuery) []string {
	if raw == nil {
		return nil
	}
	var out []string
	for _, s := range strings.Split(*raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toCalendarEvent(ev entities.CalendarEvent) api.CalendarEvent {
	labels := make([]api.Label, 0, len(ev.Labels))
	for _, l := range ev.Labels {
		labels = append(labels, api.Label{Color: l.Color, Name: l.Name})
	}
	assignees := make([]api.Assignee, 0, len(ev.Assignees))
	for _, a := range ev.Assignees {
		assignees = append(assignees, api.Assignee{AvatarUrl: a.AvatarURL, Login: a.Login})
	}
	return api.CalendarEvent{
		Assignees:     assignees,
		EndDate:       ev.EndDate,
		Id:            ev.ID,
		Labels:        labels,
		ProjectStatus: ev.ProjectStatus,
		StartDate:     ev.StartDate,
		Status:        api.IssueState(ev.Status),
		Title:         ev.Title,
		Url:           ev.URL,
	}
}

func toColorPair(c entities.ColorPair) api.ColorPair {
	return api.ColorPair{Background: c.Background, Border: c.Border}
}

// labelNames keeps nil for an omitted list and an empty slice for an explicit [].
func labelNames(src *[]api.LabelRef) []string {
	if src == nil {
		return nil
	}
	out := make([]string, 0, len(*src))
	for _, l := range *src {
		if name := strings.TrimSpace(l.Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func assigneeLogins(src *[]api.AssigneeRef) []string {
	if src == nil {
		return nil
	}
	out := make([]string, 0, len(*src))
	for _, a := range *src {
		if login := strings.TrimSpace(a.Login); login != "" {
			out = append(out, login)
		}
	}
	return out
}

func optionalDate(name string, v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := calendar.ParseDate(*v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}
