package handlers_fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
	api "github.com/blackgirlbytes/github-calendar-next/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

const unauthorizedMessage = "GitHub authentication failed. Please check your GITHUB_TOKEN."

// ErrorHandler renders errors escaping the handlers, including parameter
// binding failures of the generated wrapper, as an api.ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := api.INVALIDARGUMENT
		switch {
		case fe.Code == http.StatusNotFound:
			code = api.NOTFOUND
		case fe.Code == http.StatusUnauthorized:
			code = api.UNAUTHORIZED
		case fe.Code >= http.StatusInternalServerError:
			code = api.INTERNAL
		}
		return c.Status(fe.Code).JSON(errorResponse(code, fe.Message))
	}
	return writeError(c, err)
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := err.Error()

	var upstream *entities.UpstreamError
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = unauthorizedMessage
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
	case errors.Is(err, entities.ErrConflict):
		status = http.StatusConflict
		code = api.CONFLICT
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		code = api.UPSTREAMERROR
		msg = "github request timed out"
	case errors.As(err, &upstream):
		code = api.UPSTREAMERROR
		msg = upstream.Message
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}
