package handlers_fiber

import (
	"fmt"
	"net/http"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
	"github.com/blackgirlbytes/github-calendar-next/internal/mapper"
	api "github.com/blackgirlbytes/github-calendar-next/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostIssues creates an issue with its dates, labels and assignees.
func (h *Handler) PostIssues(c *fiber.Ctx) error {
	var body api.PostIssuesJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, fmt.Errorf("%w: invalid body: %v", entities.ErrInvalidArgument, err))
	}

	draft, err := mapper.FromCreateIssueRequest(body)
	if err != nil {
		return writeError(c, err)
	}

	issue, err := h.uc.CreateIssue(c.Context(), draft)
	if err != nil {
		h.log.Errorw("failed to create issue", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToIssueResponse(*issue))
}

// PatchIssues updates an existing issue.
func (h *Handler) PatchIssues(c *fiber.Ctx) error {
	var body api.PatchIssuesJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, fmt.Errorf("%w: invalid body: %v", entities.ErrInvalidArgument, err))
	}

	upd, err := mapper.FromUpdateIssueRequest(body)
	if err != nil {
		return writeError(c, err)
	}

	issue, err := h.uc.UpdateIssue(c.Context(), upd)
	if err != nil {
		h.log.Errorw("failed to update issue", "error", err, "number", upd.Number)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToIssueResponse(*issue))
}
