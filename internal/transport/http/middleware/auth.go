package middleware

import (
	"crypto/subtle"

	api "github.com/blackgirlbytes/github-calendar-next/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderAPIKey carries the API key when it is not passed as a query parameter.
const HeaderAPIKey = "X-API-Key"

// Authenticator decides whether a request may reach the API.
type Authenticator interface {
	Authenticate(c *fiber.Ctx) bool
}

// NoAuth allows all requests.
type NoAuth struct{}

// Authenticate implements Authenticator.
func (NoAuth) Authenticate(*fiber.Ctx) bool { return true }

// APIKeyAuth accepts requests carrying the configured key in the apikey query
// parameter or the X-API-Key header.
type APIKeyAuth struct {
	APIKey string
}

// Authenticate implements Authenticator.
func (a APIKeyAuth) Authenticate(c *fiber.Ctx) bool {
	provided := c.Query("apikey")
	if provided == "" {
		provided = c.Get(HeaderAPIKey)
	}
	return provided != "" && subtle.ConstantTimeCompare([]byte(provided), []byte(a.APIKey)) == 1
}

// NewAuthenticator creates an authenticator for method ("none" or "apikey").
func NewAuthenticator(method, apiKey string) Authenticator {
	switch method {
	case "apikey":
		return APIKeyAuth{APIKey: apiKey}
	default:
		return NoAuth{}
	}
}

// RequireAuth rejects requests the authenticator does not accept.
func RequireAuth(a Authenticator, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if a.Authenticate(c) {
			return c.Next()
		}
		log.Warnw("request rejected", "path", c.Path(), "ip", c.IP())
		var body api.ErrorResponse
		body.Error.Code = api.UNAUTHORIZED
		body.Error.Message = "missing or invalid api key"
		return c.Status(fiber.StatusUnauthorized).JSON(body)
	}
}
