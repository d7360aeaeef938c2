package calendar

import (
	"testing"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestToEvent(t *testing.T) {
	item := entities.TrackerItem{
		Number:    12,
		Title:     "Launch post",
		State:     "OPEN",
		URL:       "https://github.com/squareup/developer-programs/issues/12",
		CreatedAt: day(2025, 8, 2),
		Labels:    []entities.Label{{Name: "blog", Color: "ff0000"}, {Name: "talk", Color: "#00ff00"}},
		Assignees: []entities.Assignee{{Login: "bob"}, {Login: "alice"}},
		FieldValues: []entities.FieldValue{
			{FieldName: "Priority", Kind: entities.FieldValueSingleSelect, Option: "High"},
			{FieldName: "Status", Kind: entities.FieldValueSingleSelect, Option: "In Progress"},
		},
	}

	ev, ok := ToEvent(item)
	require.True(t, ok)
	require.Equal(t, "12", ev.ID)
	require.Equal(t, entities.StateOpen, ev.Status)
	require.Equal(t, []entities.Label{{Name: "blog", Color: "#ff0000"}, {Name: "talk", Color: "#00ff00"}}, ev.Labels)
	require.Equal(t, "bob", ev.Assignees[0].Login)
	require.Equal(t, "In Progress", *ev.ProjectStatus)
	require.Nil(t, ev.EndDate)
}

func TestToEventsDropsItemsWithoutStart(t *testing.T) {
	events := ToEvents([]entities.TrackerItem{
		{Number: 1, CreatedAt: day(2025, 8, 1), State: entities.StateClosed},
		{Number: 2},
	})
	require.Len(t, events, 1)
	require.Equal(t, entities.StateClosed, events[0].Status)
	require.NotNil(t, events[0].Labels)
	require.NotNil(t, events[0].Assignees)
}

func TestCreatedIssueBodyYieldsEventDates(t *testing.T) {
	start, end := day(2025, 8, 1), day(2025, 8, 5)
	body := FormatAnnotations(Dates{Start: &start, End: &end})

	ev, ok := ToEvent(entities.TrackerItem{Number: 7, Title: "Fix bug", Body: body, CreatedAt: time.Now()})
	require.True(t, ok)
	require.Equal(t, start, ev.StartDate)
	require.Equal(t, end, *ev.EndDate)
}

func TestNormalizeColor(t *testing.T) {
	require.Equal(t, "#abcdef", NormalizeColor("abcdef"))
	require.Equal(t, "#abcdef", NormalizeColor("#abcdef"))
	require.Equal(t, "#abcdef", NormalizeColor("##abcdef"))
	require.Empty(t, NormalizeColor(""))
}

func TestSelectionKeep(t *testing.T) {
	sel := Selection{RequiredLabel: "devrel", Since: day(2025, 8, 1)}
	labelled := []entities.Label{{Name: "devrel"}}

	require.True(t, sel.Keep(entities.TrackerItem{CreatedAt: day(2025, 8, 1), Labels: labelled}))
	require.False(t, sel.Keep(entities.TrackerItem{CreatedAt: day(2025, 7, 31), Labels: labelled}))
	require.False(t, sel.Keep(entities.TrackerItem{CreatedAt: day(2025, 8, 2)}))
	require.True(t, Selection{}.Keep(entities.TrackerItem{}))
}
