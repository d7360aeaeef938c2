package calendar

import (
	"context"
	"sync"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

// Fetcher loads the current event set.
type Fetcher func(ctx context.Context) ([]entities.CalendarEvent, error)

// View holds the in-memory calendar state of one dashboard session.
type View struct {
	mu       sync.RWMutex
	fetch    Fetcher
	events   []entities.CalendarEvent
	selected []string
	lastErr  error
}

// NewView creates an empty view backed by fetch.
func NewView(fetch Fetcher) *View {
	return &View{fetch: fetch}
}

// Refresh re-fetches the event set and replaces it wholesale. On failure the
// previous events are kept and the error is returned so the caller can retry.
func (v *View) Refresh(ctx context.Context) error {
	events, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastErr = err
	if err != nil {
		return err
	}
	v.events = events
	return nil
}

// Select replaces the assignee selection. An empty selection shows everything.
func (v *View) Select(logins ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = append([]string(nil), logins...)
}

// Toggle adds login to the selection, or removes it when already selected.
func (v *View) Toggle(login string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, s := range v.selected {
		if s == login {
			v.selected = append(v.selected[:i], v.selected[i+1:]...)
			return
		}
	}
	v.selected = append(v.selected, login)
}

// Events returns the current unfiltered event set.
func (v *View) Events() []entities.CalendarEvent {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.events
}

// Err returns the error of the last refresh, if any.
func (v *View) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastErr
}

// Render returns the filtered, ordered and colored events.
func (v *View) Render() []entities.RenderedEvent {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Render(v.events, v.selected)
}

// Assignees returns the assignee summary of the unfiltered set.
func (v *View) Assignees() []entities.AssigneeSummary {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return SummarizeAssignees(v.events)
}
