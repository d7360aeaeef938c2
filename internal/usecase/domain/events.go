package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/calendar"
	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

// Events lists the calendar events of a project board.
func (u *Usecase) Events(ctx context.Context, q entities.EventQuery) ([]entities.CalendarEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.events(ctx, u.resolveQuery(q))
}

// Calendar renders the events filtered by the selected assignees together
// with the assignee filter list.
func (u *Usecase) Calendar(ctx context.Context, q entities.EventQuery, selected []string) (*entities.CalendarPage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	q = u.resolveQuery(q)
	view := calendar.NewView(func(ctx context.Context) ([]entities.CalendarEvent, error) {
		return u.events(ctx, q)
	})
	if err := view.Refresh(ctx); err != nil {
		return nil, err
	}
	view.Select(selected...)

	return &entities.CalendarPage{
		Events:    view.Render(),
		Assignees: view.Assignees(),
	}, nil
}

// ICal writes the events filtered by the selected assignees as an iCalendar feed.
func (u *Usecase) ICal(ctx context.Context, w io.Writer, q entities.EventQuery, selected []string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	q = u.resolveQuery(q)
	events, err := u.events(ctx, q)
	if err != nil {
		return err
	}
	events = calendar.SortByAssignee(calendar.Filter(events, selected))

	name := fmt.Sprintf("%s project %d", q.Org, q.ProjectNumber)
	return calendar.WriteICal(w, name, events, time.Now())
}

func (u *Usecase) resolveQuery(q entities.EventQuery) entities.EventQuery {
	if q.Org == "" {
		q.Org = u.board.Org
	}
	if q.ProjectNumber == 0 {
		q.ProjectNumber = u.board.ProjectNumber
	}
	if q.Since.IsZero() {
		q.Since = u.board.Since()
	}
	return q
}

// events reads the board and falls back to issue search when the project
// query fails for any reason other than authentication.
func (u *Usecase) events(ctx context.Context, q entities.EventQuery) ([]entities.CalendarEvent, error) {
	items, err := u.repo.ListProjectItems(ctx, q.Org, q.ProjectNumber)
	if err != nil {
		if errors.Is(err, entities.ErrUnauthorized) {
			return nil, err
		}
		u.log.Warnw("project query failed, falling back to issue search", "error", err,
			"org", q.Org, "project", q.ProjectNumber)
		items, err = u.repo.SearchIssues(ctx, q.Org, u.board.RequiredLabel, q.Since)
		if err != nil {
			return nil, err
		}
	}

	sel := calendar.Selection{RequiredLabel: u.board.RequiredLabel, Since: q.Since}
	kept := make([]entities.TrackerItem, 0, len(items))
	for _, item := range items {
		if sel.Keep(item) {
			kept = append(kept, item)
		}
	}

	events := calendar.ToEvents(kept)
	u.log.Infow("events listed", "org", q.Org, "project", q.ProjectNumber,
		"items", len(items), "events", len(events))
	return events, nil
}
