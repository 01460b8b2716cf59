package handler

import (
	"log/slog"
	"net/http"
	"time"

	"motion/internal/delivery/http/response"
	"motion/internal/domain/entity"
	"motion/internal/infra/location"
	"motion/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IngestFixRequest is one device-reported location fix.
type IngestFixRequest struct {
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp"`
}

// AuthorizationRequest carries the device-reported permission decision.
type AuthorizationRequest struct {
	Status string `json:"status" validate:"required,oneof=not_determined granted denied"`
}

// SubsystemRequest flips the device location-subsystem switch.
type SubsystemRequest struct {
	Enabled bool `json:"enabled"`
}

// LocationHandler holds dependencies for the device-facing location intake
// and the path query.
type LocationHandler struct {
	source *location.PushSource
	uc     usecase.TrackingUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(source *location.PushSource, uc usecase.TrackingUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		source: source,
		uc:     uc,
		logger: logger,
	}
}

// IngestFix feeds one device fix into the active subscription.
func (h *LocationHandler) IngestFix(c echo.Context) error {
	var input *IngestFixRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fix input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	accepted := h.source.Ingest(entity.Fix{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy,
		Timestamp: timestamp,
	})

	return response.Success(c, http.StatusAccepted, map[string]bool{"accepted": accepted}, "Fix processed")
}

// SetAuthorization records the device permission decision.
func (h *LocationHandler) SetAuthorization(c echo.Context) error {
	var input *AuthorizationRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authorization input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	h.source.SetAuthorizationStatus(entity.AuthorizationStatus(input.Status))

	return response.Success(c, http.StatusOK, map[string]string{"status": input.Status}, "Authorization updated")
}

// SetSubsystem flips the location-subsystem switch.
func (h *LocationHandler) SetSubsystem(c echo.Context) error {
	var input *SubsystemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subsystem input")
	}

	h.source.SetEnabled(input.Enabled)

	return response.Success(c, http.StatusOK, map[string]bool{"enabled": input.Enabled}, "Subsystem updated")
}

// DailyPath returns the ordered path for the local-time day containing the
// optional `date` query parameter, defaulting to today.
func (h *LocationHandler) DailyPath(c echo.Context) error {
	ref := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
		}
		ref = parsed
	}

	samples, err := h.uc.DailyPath(c.Request().Context(), ref)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"date":    ref.Format("2006-01-02"),
		"count":   len(samples),
		"samples": samples,
	}, "Daily path retrieved successfully")
}
