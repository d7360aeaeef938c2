package calendar

import (
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

const prodID = "-//github-calendar-next//issue calendar//EN"

// WriteICal encodes events as an iCalendar feed of all-day events.
func WriteICal(w io.Writer, name string, events []entities.CalendarEvent, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	if name != "" {
		cal.Props.SetText("X-WR-CALNAME", name)
	}

	for _, ev := range events {
		cal.Children = append(cal.Children, icalEvent(ev, stamp).Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}

func icalEvent(ev entities.CalendarEvent, stamp time.Time) *ical.Event {
	e := ical.NewEvent()
	e.Props.SetText(ical.PropUID, eventUID(ev))
	e.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	e.Props.SetText(ical.PropSummary, ev.Title)

	start := truncateDay(ev.StartDate)
	end := start
	if ev.EndDate != nil && !ev.EndDate.Before(start) {
		end = truncateDay(*ev.EndDate)
	}
	e.Props.SetDate(ical.PropDateTimeStart, start)
	// DTEND is exclusive for all-day events.
	e.Props.SetDate(ical.PropDateTimeEnd, end.AddDate(0, 0, 1))

	if ev.URL != "" {
		if u, err := url.Parse(ev.URL); err == nil {
			e.Props.SetURI(ical.PropURL, u)
		}
	}

	if len(ev.Labels) > 0 {
		names := make([]string, 0, len(ev.Labels))
		for _, l := range ev.Labels {
			names = append(names, escapeText(l.Name))
		}
		cat := ical.NewProp(ical.PropCategories)
		cat.Value = strings.Join(names, ",")
		e.Props.Set(cat)
	}

	status := "NEEDS-ACTION"
	if ev.Status == entities.StateClosed {
		status = "COMPLETED"
	}
	e.Props.SetText(ical.PropStatus, status)

	return e
}

// eventUID derives a UID from the issue URL. It is stable across feed
// refreshes and unique across repositories.
func eventUID(ev entities.CalendarEvent) string {
	if ev.URL == "" {
		return "issue-" + ev.ID
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(ev.URL)).String()
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var textEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

// escapeText escapes a single TEXT value of a multi-valued property.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
