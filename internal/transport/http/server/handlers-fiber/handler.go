// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/blackgirlbytes/github-calendar-next/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the calendar API using usecase layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with usecase dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
