package github

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	gh "github.com/google/go-github/v66/github"
)

// restError classifies a go-github error. notFound is returned for 404 responses.
func restError(op string, err error, notFound error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%s: %w", op, &entities.UpstreamError{Status: http.StatusForbidden, Message: rateErr.Message})
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%s: %w", op, &entities.UpstreamError{Status: http.StatusForbidden, Message: abuseErr.Message})
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w", op, entities.ErrUnauthorized)
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, notFound)
		case http.StatusUnprocessableEntity:
			return fmt.Errorf("%s: %w: %s", op, entities.ErrInvalidArgument, respErr.Message)
		}
		return fmt.Errorf("%s: %w", op, &entities.UpstreamError{
			Status:  respErr.Response.StatusCode,
			Message: respErr.Message,
		})
	}
	return fmt.Errorf("%s: %w", op, err)
}

// graphQLError classifies a githubv4 error. notFound is returned when GitHub
// could not resolve a node of the query.
func graphQLError(op string, err error, notFound error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", op, urlErr.Err)
	}
	msg := err.Error()
	if strings.Contains(msg, "Could not resolve to") {
		return fmt.Errorf("%s: %w: %s", op, notFound, msg)
	}
	return fmt.Errorf("%s: %w", op, &entities.UpstreamError{Message: msg})
}
