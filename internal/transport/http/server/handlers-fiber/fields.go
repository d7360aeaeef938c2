package handlers_fiber

import (
	"fmt"
	"net/http"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
	"github.com/blackgirlbytes/github-calendar-next/internal/mapper"
	api "github.com/blackgirlbytes/github-calendar-next/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PatchProjectFields sets the project start/due dates of an issue.
func (h *Handler) PatchProjectFields(c *fiber.Ctx) error {
	var body api.PatchProjectFieldsJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, fmt.Errorf("%w: invalid body: %v", entities.ErrInvalidArgument, err))
	}

	upd, err := mapper.FromProjectFieldsRequest(body)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.UpdateDateFields(c.Context(), upd)
	if err != nil {
		h.log.Errorw("failed to update project fields", "error", err, "number", upd.IssueNumber)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToProjectFieldsResponse(*res))
}

// GetStatusFields lists the status-like single-select fields of the board.
func (h *Handler) GetStatusFields(c *fiber.Ctx) error {
	fields, err := h.uc.StatusFields(c.Context())
	if err != nil {
		h.log.Errorw("failed to list status fields", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToStatusFieldsResponse(fields))
}
