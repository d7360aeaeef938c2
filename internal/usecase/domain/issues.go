package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/calendar"
	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

// CreateIssue opens an issue with date annotations, attaches labels and sets
// the project date fields once the issue is indexed. Label and field failures
// are reported as warnings.
func (u *Usecase) CreateIssue(ctx context.Context, draft entities.IssueDraft) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if err := checkRange(draft.StartDate, draft.EndDate); err != nil {
		return nil, err
	}

	body := calendar.FormatAnnotations(calendar.Dates{Start: draft.StartDate, End: draft.EndDate})
	issue, err := u.repo.CreateIssue(ctx, title, body, draft.Assignees)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if len(draft.Labels) > 0 {
		if err := u.repo.AddLabels(ctx, issue.Number, draft.Labels); err != nil {
			u.log.Warnw("labels not applied", "error", err, "number", issue.Number, "labels", draft.Labels)
			warnings = append(warnings, fmt.Sprintf("labels not applied: %v", err))
		}
	}

	if draft.StartDate != nil || draft.EndDate != nil {
		upd := entities.DateFieldsUpdate{
			IssueNumber: issue.Number,
			StartDate:   draft.StartDate,
			EndDate:     draft.EndDate,
		}
		if err := <-u.syncAfter(ctx, u.board.IndexDelay, upd); err != nil {
			u.log.Warnw("project fields not set", "error", err, "number", issue.Number)
			warnings = append(warnings, fmt.Sprintf("project fields not set: %v", err))
		}
	}

	issue.Warnings = warnings
	u.log.Infow("issue created", "number", issue.Number, "warnings", len(warnings))
	return issue, nil
}

// UpdateIssue applies a partial update in a single edit call. New dates
// replace the annotation block of the body; missing dates keep their
// previously annotated value.
func (u *Usecase) UpdateIssue(ctx context.Context, upd entities.IssueUpdate) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if upd.Number <= 0 {
		return nil, fmt.Errorf("%w: issue id is required", entities.ErrInvalidArgument)
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", entities.ErrInvalidArgument)
	}
	if upd.State != nil && *upd.State != entities.StateOpen && *upd.State != entities.StateClosed {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *upd.State)
	}

	current, err := u.repo.GetIssue(ctx, upd.Number)
	if err != nil {
		return nil, err
	}
	if upd.ExpectedUpdatedAt != nil && !sameInstant(current.UpdatedAt, *upd.ExpectedUpdatedAt) {
		return nil, fmt.Errorf("%w: #%d was updated at %s", entities.ErrConflict,
			upd.Number, current.UpdatedAt.UTC().Format(time.RFC3339))
	}

	edit := entities.IssueEdit{
		Title:     upd.Title,
		Labels:    upd.Labels,
		Assignees: upd.Assignees,
		State:     upd.State,
	}
	datesChanged := upd.StartDate != nil || upd.EndDate != nil
	if datesChanged {
		body := calendar.ReplaceAnnotations(current.Body, calendar.Dates{Start: upd.StartDate, End: upd.EndDate})
		edit.Body = &body
	}

	issue, err := u.repo.EditIssue(ctx, upd.Number, edit)
	if err != nil {
		return nil, err
	}

	if datesChanged {
		fields := entities.DateFieldsUpdate{
			IssueNumber: upd.Number,
			StartDate:   upd.StartDate,
			EndDate:     upd.EndDate,
		}
		if _, err := u.syncDateFields(ctx, fields); err != nil {
			u.log.Warnw("project fields not synced", "error", err, "number", upd.Number)
			issue.Warnings = append(issue.Warnings, fmt.Sprintf("project fields not synced: %v", err))
		}
	}

	u.log.Infow("issue updated", "number", upd.Number, "dates_changed", datesChanged)
	return issue, nil
}

// syncAfter sets the project date fields in the background after delay. The
// returned channel yields exactly one result.
func (u *Usecase) syncAfter(ctx context.Context, delay time.Duration, upd entities.DateFieldsUpdate) <-chan error {
	done := make(chan error, 1)
	go func() {
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				done <- ctx.Err()
				return
			}
		}
		_, err := u.syncDateFields(ctx, upd)
		done <- err
	}()
	return done
}

func checkRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: end date %s is before start date %s", entities.ErrInvalidArgument,
			calendar.FormatISODate(*end), calendar.FormatISODate(*start))
	}
	return nil
}

func sameInstant(a, b time.Time) bool {
	return a.UTC().Truncate(time.Second).Equal(b.UTC().Truncate(time.Second))
}
