package calendar

import "github.com/blackgirlbytes/github-calendar-next/internal/entities"

// Palette is the fixed assignee palette, assigned in first-seen order.
var Palette = [10]entities.ColorPair{
	{Background: "#3b82f6", Border: "#1d4ed8"}, // blue
	{Background: "#10b981", Border: "#047857"}, // green
	{Background: "#f59e0b", Border: "#d97706"}, // amber
	{Background: "#ef4444", Border: "#dc2626"}, // red
	{Background: "#8b5cf6", Border: "#7c3aed"}, // purple
	{Background: "#06b6d4", Border: "#0891b2"}, // cyan
	{Background: "#ec4899", Border: "#db2777"}, // pink
	{Background: "#84cc16", Border: "#65a30d"}, // lime
	{Background: "#f97316", Border: "#ea580c"}, // orange
	{Background: "#6366f1", Border: "#4f46e5"}, // indigo
}

// UnassignedColor is used for events without assignees.
var UnassignedColor = entities.ColorPair{Background: "#6b7280", Border: "#4b5563"}

const (
	textColor      = "#ffffff"
	completedAlpha = "80"
)

// ColorMap maps assignee logins to palette colors for one render pass.
type ColorMap struct {
	colors map[string]entities.ColorPair
	order  []string
}

// AssignColors scans events and their assignees in order and gives each new
// login the next palette entry, wrapping after ten.
func AssignColors(events []entities.CalendarEvent) *ColorMap {
	m := &ColorMap{colors: make(map[string]entities.ColorPair)}
	for _, ev := range events {
		for _, a := range ev.Assignees {
			m.add(a.Login)
		}
	}
	return m
}

func (m *ColorMap) add(login string) {
	if _, ok := m.colors[login]; ok {
		return
	}
	m.colors[login] = Palette[len(m.order)%len(Palette)]
	m.order = append(m.order, login)
}

// Color returns the color of login, or the unassigned gray when unknown.
func (m *ColorMap) Color(login string) entities.ColorPair {
	if c, ok := m.colors[login]; ok {
		return c
	}
	return UnassignedColor
}

// Logins returns the logins in assignment order.
func (m *ColorMap) Logins() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// EventColor is the color of the event's primary assignee.
func (m *ColorMap) EventColor(ev entities.CalendarEvent) entities.ColorPair {
	if ev.Unassigned() {
		return UnassignedColor
	}
	return m.Color(ev.Assignees[0].Login)
}

// dim makes closed events visually recede.
func dim(c entities.ColorPair) entities.ColorPair {
	return entities.ColorPair{
		Background: c.Background + completedAlpha,
		Border:     c.Border + completedAlpha,
	}
}
