package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

// Selection narrows the items turned into events.
type Selection struct {
	RequiredLabel string
	Since         time.Time
}

// Keep reports whether item passes the label and creation-date filters.
func (s Selection) Keep(item entities.TrackerItem) bool {
	if s.RequiredLabel != "" && !hasLabel(item.Labels, s.RequiredLabel) {
		return false
	}
	if !s.Since.IsZero() && item.CreatedAt.Before(s.Since) {
		return false
	}
	return true
}

// ToEvents normalizes items into calendar events, dropping those without a
// resolvable start date.
func ToEvents(items []entities.TrackerItem) []entities.CalendarEvent {
	events := make([]entities.CalendarEvent, 0, len(items))
	for _, item := range items {
		ev, ok := ToEvent(item)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events
}

// ToEvent maps a single item. The second result is false when no start date
// could be resolved.
func ToEvent(item entities.TrackerItem) (entities.CalendarEvent, bool) {
	dates := ExtractDates(item)
	if dates.Start == nil {
		return entities.CalendarEvent{}, false
	}

	labels := make([]entities.Label, 0, len(item.Labels))
	for _, l := range item.Labels {
		labels = append(labels, entities.Label{Name: l.Name, Color: NormalizeColor(l.Color)})
	}
	assignees := make([]entities.Assignee, len(item.Assignees))
	copy(assignees, item.Assignees)

	state := item.State
	if state != entities.StateClosed {
		state = entities.StateOpen
	}

	return entities.CalendarEvent{
		ID:            strconv.Itoa(item.Number),
		Title:         item.Title,
		StartDate:     *dates.Start,
		EndDate:       dates.End,
		URL:           item.URL,
		Labels:        labels,
		Assignees:     assignees,
		Status:        state,
		ProjectStatus: projectStatus(item.FieldValues),
	}, true
}

// NormalizeColor returns a hex color with exactly one leading '#'.
func NormalizeColor(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return ""
	}
	return "#" + strings.TrimLeft(c, "#")
}

func projectStatus(values []entities.FieldValue) *string {
	for _, fv := range values {
		if fv.Kind != entities.FieldValueSingleSelect || fv.Option == "" {
			continue
		}
		if strings.Contains(strings.ToLower(fv.FieldName), "status") {
			status := fv.Option
			return &status
		}
	}
	return nil
}

func hasLabel(labels []entities.Label, name string) bool {
	for _, l := range labels {
		if l.Name == name {
			return true
		}
	}
	return false
}
