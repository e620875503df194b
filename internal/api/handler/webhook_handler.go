package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deenanswers/qa-system/internal/api/metrics"
)

// WebhookHandler receives identity-provider event deliveries. User records
// are provisioned on login, not from webhooks, so deliveries are logged and
// acknowledged without any business effect.
type WebhookHandler struct {
	log zerolog.Logger
}

func NewWebhookHandler(log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{log: log}
}

// Handle handles POST /webhooks/clerk.
//
// @Summary      Receive an identity-provider webhook event
// @Tags         webhooks
// @Accept       json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  errorResponse
// @Router       /webhooks/clerk [post]
func (h *WebhookHandler) Handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("webhook body read failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "webhook processing failed")
	}

	var event struct {
		Type string `json:"type"`
	}
	_ = json.Unmarshal(body, &event)

	metrics.WebhookEventsTotal.WithLabelValues("ok").Inc()
	h.log.Info().
		Str("event_type", event.Type).
		Int("payload_bytes", len(body)).
		Msg("identity webhook received")

	return c.JSON(http.StatusOK, map[string]string{"status": "received"})
}
