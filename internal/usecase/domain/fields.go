package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackgirlbytes/github-calendar-next/internal/calendar"
	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

const (
	startFieldLabel = "Start Date"
	dueFieldLabel   = "Due Date"

	defaultOptionColor = "#6b7280"
)

// UpdateDateFields writes the start/due project fields of an issue.
func (u *Usecase) UpdateDateFields(ctx context.Context, upd entities.DateFieldsUpdate) (*entities.DateFieldsResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if upd.IssueNumber <= 0 {
		return nil, fmt.Errorf("%w: issueNumber is required", entities.ErrInvalidArgument)
	}
	if upd.StartDate == nil && upd.EndDate == nil {
		return nil, fmt.Errorf("%w: startDate or endDate is required", entities.ErrInvalidArgument)
	}
	if err := checkRange(upd.StartDate, upd.EndDate); err != nil {
		return nil, err
	}
	return u.syncDateFields(ctx, upd)
}

// StatusFields lists the single-select fields of the board that describe
// item progress.
func (u *Usecase) StatusFields(ctx context.Context) ([]entities.ProjectField, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	projectID, err := u.repo.ProjectID(ctx)
	if err != nil {
		return nil, err
	}
	fields, err := u.repo.ListProjectFields(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ProjectField, 0)
	for _, f := range fields {
		if len(f.Options) == 0 || !isStatusField(f.Name) {
			continue
		}
		for i := range f.Options {
			if f.Options[i].Color == "" {
				f.Options[i].Color = defaultOptionColor
			}
		}
		out = append(out, f)
	}
	return out, nil
}

func (u *Usecase) syncDateFields(ctx context.Context, upd entities.DateFieldsUpdate) (*entities.DateFieldsResult, error) {
	item, err := u.repo.FindProjectItem(ctx, upd.IssueNumber)
	if err != nil {
		return nil, err
	}

	projectID := item.ProjectID
	if projectID == "" {
		if projectID, err = u.repo.ProjectID(ctx); err != nil {
			return nil, err
		}
	}

	startID, dueID, err := u.dateFieldIDs(ctx, projectID, upd)
	if err != nil {
		return nil, err
	}

	res := &entities.DateFieldsResult{ProjectItemID: item.ItemID, Updates: make([]entities.FieldUpdateResult, 0, 2)}
	if upd.StartDate != nil {
		if err := u.repo.SetDateField(ctx, projectID, item.ItemID, startID, *upd.StartDate); err != nil {
			return nil, err
		}
		res.Updates = append(res.Updates, entities.FieldUpdateResult{Field: startFieldLabel, Value: calendar.FormatISODate(*upd.StartDate)})
	}
	if upd.EndDate != nil {
		if err := u.repo.SetDateField(ctx, projectID, item.ItemID, dueID, *upd.EndDate); err != nil {
			return nil, err
		}
		res.Updates = append(res.Updates, entities.FieldUpdateResult{Field: dueFieldLabel, Value: calendar.FormatISODate(*upd.EndDate)})
	}

	u.log.Infow("project date fields set", "number", upd.IssueNumber, "item_id", item.ItemID, "updates", len(res.Updates))
	return res, nil
}

// dateFieldIDs returns the configured field ids, looking up by name on the
// board only those that are needed and not configured.
func (u *Usecase) dateFieldIDs(ctx context.Context, projectID string, upd entities.DateFieldsUpdate) (string, string, error) {
	startID, dueID := u.board.StartFieldID, u.board.DueFieldID
	needStart := upd.StartDate != nil && startID == ""
	needDue := upd.EndDate != nil && dueID == ""
	if !needStart && !needDue {
		return startID, dueID, nil
	}

	fields, err := u.repo.ListProjectFields(ctx, projectID)
	if err != nil {
		return "", "", err
	}
	for _, f := range fields {
		if f.DataType != "" && f.DataType != "DATE" {
			continue
		}
		name := strings.ToLower(f.Name)
		switch {
		case strings.Contains(name, "start"):
			if startID == "" {
				startID = f.ID
			}
		case strings.Contains(name, "due"), strings.Contains(name, "end"):
			if dueID == "" {
				dueID = f.ID
			}
		}
	}

	if needStart && startID == "" {
		return "", "", fmt.Errorf("%w: no start date field on project", entities.ErrFieldNotFound)
	}
	if needDue && dueID == "" {
		return "", "", fmt.Errorf("%w: no due date field on project", entities.ErrFieldNotFound)
	}
	return startID, dueID, nil
}

func isStatusField(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "status") || strings.Contains(name, "state") || strings.Contains(name, "progress")
}
