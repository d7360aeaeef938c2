// Package calendar turns project board items into calendar events and
// decorates them for rendering.
package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "January 2, 2006"
	annotationDivider = "\n---\n\n"
)

var (
	startAnnotationRe = regexp.MustCompile(`\*\*Start Date:\*\*[^\n]*?\(([^)]+)\)`)
	endAnnotationRe   = regexp.MustCompile(`\*\*End Date:\*\*[^\n]*?\(([^)]+)\)`)
	// A block of annotation lines with its optional divider.
	annotationBlockRe = regexp.MustCompile(`(?m)^(?:\*\*(?:Start|End) Date:\*\*[^\n]*(?:\n|$))+(?:\n---\n\n?)?`)
)

// Dates is the normalized timeline of an item.
type Dates struct {
	Start *time.Time
	End   *time.Time
}

// ExtractDates resolves the start and end dates of an item. Project fields win
// over body annotations; the creation time and milestone due date are the
// fallbacks. Within project fields the last matching field wins.
func ExtractDates(item entities.TrackerItem) Dates {
	var d Dates

	for _, fv := range item.FieldValues {
		if fv.Kind != entities.FieldValueDate || fv.Date == "" {
			continue
		}
		t, err := ParseDate(fv.Date)
		if err != nil {
			continue
		}
		name := strings.ToLower(fv.FieldName)
		switch {
		case strings.Contains(name, "start"):
			d.Start = &t
		case strings.Contains(name, "end"), strings.Contains(name, "due"):
			d.End = &t
		}
	}

	if d.Start == nil || d.End == nil {
		ann := ParseAnnotations(item.Body)
		if d.Start == nil {
			d.Start = ann.Start
		}
		if d.End == nil {
			d.End = ann.End
		}
	}

	if d.Start == nil && !item.CreatedAt.IsZero() {
		created := item.CreatedAt.UTC()
		d.Start = &created
	}

	if d.End == nil && item.Milestone != nil && item.Milestone.DueOn != nil {
		due := item.Milestone.DueOn.UTC()
		d.End = &due
	}

	return d
}

// ParseAnnotations reads the start/end annotations embedded in an issue body.
func ParseAnnotations(body string) Dates {
	var d Dates
	if m := startAnnotationRe.FindStringSubmatch(body); m != nil {
		if t, err := ParseDate(m[1]); err == nil {
			d.Start = &t
		}
	}
	if m := endAnnotationRe.FindStringSubmatch(body); m != nil {
		if t, err := ParseDate(m[1]); err == nil {
			d.End = &t
		}
	}
	return d
}

// FormatAnnotations renders the annotation block prepended to issue bodies.
// It returns an empty string when both dates are nil.
func FormatAnnotations(d Dates) string {
	var b strings.Builder
	if d.Start != nil {
		fmt.Fprintf(&b, "**Start Date:** %s (%s)\n", d.Start.UTC().Format(displayDateLayout), FormatISODate(*d.Start))
	}
	if d.End != nil {
		fmt.Fprintf(&b, "**End Date:** %s (%s)\n", d.End.UTC().Format(displayDateLayout), FormatISODate(*d.End))
	}
	if b.Len() == 0 {
		return ""
	}
	b.WriteString(annotationDivider)
	return b.String()
}

// StripAnnotations removes the first block of annotation lines and its
// divider from body. Annotation lines further down the body, such as a date
// quoted in the description, are kept as written.
func StripAnnotations(body string) string {
	loc := annotationBlockRe.FindStringIndex(body)
	if loc == nil {
		return body
	}
	return body[:loc[0]] + body[loc[1]:]
}

// ReplaceAnnotations rewrites body so that it starts with annotations for d.
// Dates missing from d keep the value previously annotated in body.
func ReplaceAnnotations(body string, d Dates) string {
	prev := ParseAnnotations(body)
	if d.Start == nil {
		d.Start = prev.Start
	}
	if d.End == nil {
		d.End = prev.End
	}
	return FormatAnnotations(d) + StripAnnotations(body)
}

// FormatISODate formats t as YYYY-MM-DD in UTC.
func FormatISODate(t time.Time) string {
	return t.UTC().Format(isoDateLayout)
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{isoDateLayout, time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", entities.ErrInvalidArgument, s)
}
