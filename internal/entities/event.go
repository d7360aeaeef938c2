// Package entities contains core business entities.
package entities

import "time"

// IssueState enumerates issue lifecycle states.
type IssueState string

const (
	// StateOpen marks an open issue.
	StateOpen IssueState = "open"
	// StateClosed marks a closed issue.
	StateClosed IssueState = "closed"
)

// Label is a GitHub label as shown on the calendar.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Assignee is a GitHub user assigned to an issue. Login is the identity key.
type Assignee struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
}

// CalendarEvent is the flat record rendered by the calendar. StartDate is always set.
type CalendarEvent struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	URL           string     `json:"url"`
	Labels        []Label    `json:"labels"`
	Assignees     []Assignee `json:"assignees"`
	Status        IssueState `json:"status"`
	ProjectStatus *string    `json:"projectStatus,omitempty"`
}

// Unassigned reports whether the event has no assignees.
func (e CalendarEvent) Unassigned() bool {
	return len(e.Assignees) == 0
}

// ColorPair is a background/border color combination.
type ColorPair struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

// RenderedEvent is a calendar event decorated for display.
type RenderedEvent struct {
	CalendarEvent
	Color           ColorPair `json:"color"`
	TextColor       string    `json:"textColor"`
	PrimaryAssignee string    `json:"primaryAssignee"`
	Completed       bool      `json:"completed"`
	Order           int       `json:"order"`
}

// AssigneeSummary is an entry of the assignee filter list.
type AssigneeSummary struct {
	Login     string    `json:"login"`
	AvatarURL string    `json:"avatarUrl"`
	Count     int       `json:"count"`
	Color     ColorPair `json:"color"`
}

// EventQuery selects which project items are listed.
type EventQuery struct {
	Org           string
	ProjectNumber int
	Since         time.Time
}

// CalendarPage is a rendered calendar with its assignee filter list.
type CalendarPage struct {
	Events    []RenderedEvent   `json:"events"`
	Assignees []AssigneeSummary `json:"assignees"`
}
