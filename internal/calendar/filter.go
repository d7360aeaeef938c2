package calendar

import (
	"sort"
	"strings"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

const (
	// UnassignedKey selects events without assignees.
	UnassignedKey = "unassigned"

	unassignedSortKey = "zzz-unassigned"
)

// Filter keeps events matching the selected logins. An empty selection keeps everything.
func Filter(events []entities.CalendarEvent, selected []string) []entities.CalendarEvent {
	if len(selected) == 0 {
		return events
	}
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}
	_, wantUnassigned := set[UnassignedKey]

	out := make([]entities.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if ev.Unassigned() {
			if wantUnassigned {
				out = append(out, ev)
			}
			continue
		}
		for _, a := range ev.Assignees {
			if _, ok := set[a.Login]; ok {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}

// PrimaryKey is the sort key of an event: its first assignee's lowercased
// login, or a sentinel ordering after ordinary logins.
func PrimaryKey(ev entities.CalendarEvent) string {
	if ev.Unassigned() {
		return unassignedSortKey
	}
	return strings.ToLower(ev.Assignees[0].Login)
}

// SortByAssignee returns a copy of events ordered by primary key. Equal keys
// keep their input order.
func SortByAssignee(events []entities.CalendarEvent) []entities.CalendarEvent {
	out := make([]entities.CalendarEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return PrimaryKey(out[i]) < PrimaryKey(out[j])
	})
	return out
}

// Render filters, sorts and colors events, attaching an explicit order index.
// Colors are derived from the full event set so that filtering does not shift them.
func Render(events []entities.CalendarEvent, selected []string) []entities.RenderedEvent {
	colors := AssignColors(events)
	sorted := SortByAssignee(Filter(events, selected))

	out := make([]entities.RenderedEvent, 0, len(sorted))
	for i, ev := range sorted {
		color := colors.EventColor(ev)
		text := textColor
		completed := ev.Status == entities.StateClosed
		if completed {
			color = dim(color)
			text += completedAlpha
		}
		out = append(out, entities.RenderedEvent{
			CalendarEvent:   ev,
			Color:           color,
			TextColor:       text,
			PrimaryAssignee: PrimaryKey(ev),
			Completed:       completed,
			Order:           i,
		})
	}
	return out
}

// SummarizeAssignees counts events per assignee for the filter list, most
// active first, followed by an unassigned entry when any event has no assignee.
func SummarizeAssignees(events []entities.CalendarEvent) []entities.AssigneeSummary {
	colors := AssignColors(events)
	byLogin := make(map[string]*entities.AssigneeSummary)
	unassigned := 0

	for _, ev := range events {
		if ev.Unassigned() {
			unassigned++
			continue
		}
		for _, a := range ev.Assignees {
			if s, ok := byLogin[a.Login]; ok {
				s.Count++
				continue
			}
			byLogin[a.Login] = &entities.AssigneeSummary{
				Login:     a.Login,
				AvatarURL: a.AvatarURL,
				Count:     1,
				Color:     colors.Color(a.Login),
			}
		}
	}

	out := make([]entities.AssigneeSummary, 0, len(byLogin)+1)
	for _, login := range colors.Logins() {
		out = append(out, *byLogin[login])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if unassigned > 0 {
		out = append(out, entities.AssigneeSummary{
			Login: UnassignedKey,
			Count: unassigned,
			Color: UnassignedColor,
		})
	}
	return out
}
