package handlers_fiber

import (
	"bytes"
	"net/http"

	"github.com/blackgirlbytes/github-calendar-next/internal/mapper"
	api "github.com/blackgirlbytes/github-calendar-next/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetEvents lists the calendar events of the project board.
func (h *Handler) GetEvents(c *fiber.Ctx, params api.GetEventsParams) error {
	q, err := mapper.FromEventParams(params.Org, params.Project, params.Since)
	if err != nil {
		return writeError(c, err)
	}

	events, err := h.uc.Events(c.Context(), q)
	if err != nil {
		h.log.Errorw("failed to list events", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToEventsResponse(events))
}

// GetCalendar renders the events filtered by the assignees query parameter.
func (h *Handler) GetCalendar(c *fiber.Ctx, params api.GetCalendarParams) error {
	q, err := mapper.FromEventParams(params.Org, params.Project, params.Since)
	if err != nil {
		return writeError(c, err)
	}

	page, err := h.uc.Calendar(c.Context(), q, mapper.ParseAssignees(params.Assignees))
	if err != nil {
		h.log.Errorw("failed to render calendar", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToCalendarPage(*page))
}

// GetEventsICal serves the events as an iCalendar feed.
func (h *Handler) GetEventsICal(c *fiber.Ctx, params api.GetEventsICalParams) error {
	q, err := mapper.FromEventParams(params.Org, params.Project, params.Since)
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := h.uc.ICal(c.Context(), &buf, q, mapper.ParseAssignees(params.Assignees)); err != nil {
		h.log.Errorw("failed to render ical feed", "error", err)
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
