package handlers_fiber

import (
	"net/http"

	"github.com/blackgirlbytes/github-calendar-next/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetLabels lists the repository labels.
func (h *Handler) GetLabels(c *fiber.Ctx) error {
	labels, err := h.uc.Labels(c.Context())
	if err != nil {
		h.log.Errorw("failed to list labels", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToLabelsResponse(labels))
}
