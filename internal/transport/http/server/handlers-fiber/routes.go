package handlers_fiber

import (
	"net/http"

	api "github.com/blackgirlbytes/github-calendar-next/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

var _ api.ServerInterface = (*Handler)(nil)

// Register mounts the generated API routes on r behind mw.
func Register(r fiber.Router, h *Handler, mw ...fiber.Handler) {
	opts := api.FiberServerOptions{}
	for _, m := range mw {
		opts.Middlewares = append(opts.Middlewares, api.MiddlewareFunc(m))
	}
	api.RegisterHandlersWithOptions(r, h, opts)
}

// Healthz reports liveness.
func Healthz(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.HealthResponse{Status: "ok"})
}
