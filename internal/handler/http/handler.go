package http

import (
	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/internal/service"
)

type Handler struct {
	services *service.Services

	// version is the build version injected at link time, served by
	// GET /api/version.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
