package handler

import (
	"log/slog"
	"net/http"

	"motion/internal/delivery/http/response"
	"motion/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TrackingHandler holds dependencies for tracking session handlers.
type TrackingHandler struct {
	uc     usecase.TrackingUsecase
	logger *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler, injected by Fx.
func NewTrackingHandler(uc usecase.TrackingUsecase, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Start begins a tracking run, negotiating authorization when it is still
// undetermined.
func (h *TrackingHandler) Start(c echo.Context) error {
	if err := h.uc.StartTracking(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.Session(), "Tracking started")
}

// Stop halts the current tracking run. Stopping an already stopped session
// succeeds with the unchanged state.
func (h *TrackingHandler) Stop(c echo.Context) error {
	h.uc.StopTracking(c.Request().Context())

	return response.Success(c, http.StatusOK, h.uc.Session(), "Tracking stopped")
}

// Toggle flips the tracking run on or off.
func (h *TrackingHandler) Toggle(c echo.Context) error {
	tracking, err := h.uc.ToggleTracking(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"tracking": tracking,
		"session":  h.uc.Session(),
	}, "Tracking toggled")
}

// Session returns the observable tracking session snapshot.
func (h *TrackingHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Session(), "Session retrieved successfully")
}
