// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"crud-tutorials/internal/transport/http/view"
	"crud-tutorials/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the routes of every tutorial app using service layer interfaces.
// uc is nil for the apps that keep no records.
type Handler struct {
	log       *zap.SugaredLogger
	uc        usecase.InterfaceUsecase
	views     *view.Renderer
	uploadDir string
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, views *view.Renderer, uploadDir string) *Handler {
	return &Handler{
		log:       log,
		uc:        usecase,
		views:     views,
		uploadDir: uploadDir,
	}
}
