// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized signals that GitHub rejected the configured token.
	ErrUnauthorized = errors.New("github authentication failed")
	// ErrNotFound signals a missing upstream resource.
	ErrNotFound = errors.New("not found")
	// ErrIssueNotFound signals a missing issue.
	ErrIssueNotFound = fmt.Errorf("issue %w", ErrNotFound)
	// ErrProjectNotFound signals a missing project board.
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	// ErrNotInProject signals an issue that is not linked to the configured project.
	ErrNotInProject = fmt.Errorf("project item %w", ErrNotFound)
	// ErrFieldNotFound signals a project date field that could not be resolved.
	ErrFieldNotFound = fmt.Errorf("project field %w", ErrNotFound)
	// ErrConflict signals that an issue changed since the caller last read it.
	ErrConflict = errors.New("issue modified concurrently")
)

// UpstreamError describes a failed GitHub call that maps to no sentinel.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("github: %s", e.Message)
	}
	return fmt.Sprintf("github: status %d: %s", e.Status, e.Message)
}
