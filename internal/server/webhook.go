package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"eventsync/internal/domain"
	"eventsync/internal/wordpress"
)

// SecretHeader carries the shared webhook secret.
const SecretHeader = "X-Webhook-Secret"

// SyncService is the slice of the sync orchestrator the webhook needs.
type SyncService interface {
	SyncEvent(ctx context.Context, event *wordpress.Event) (*domain.Report, error)
}

// WebhookHandler receives WordPress push notifications for single events.
type WebhookHandler struct {
	service SyncService
	secret  string
	logger  *slog.Logger
}

func NewWebhookHandler(service SyncService, secret string, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		secret:  secret,
		logger:  logger.With("component", "webhook"),
	}
}

// RegisterRoutes registers the webhook endpoint.
func (h *WebhookHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/webhooks/wordpress", h.handle)
}

type webhookBody struct {
	Event *wordpress.Event `json:"event"`
}

type webhookResponse struct {
	OK bool `json:"ok"`
	domain.Report
}

func (h *WebhookHandler) handle(c echo.Context) error {
	if !h.verifySecret(c.Request().Header.Get(SecretHeader)) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	// Unmarshal the whole body so trailing garbage after the JSON value is
	// rejected too; a streaming decode would stop at the first value.
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
	}

	var body webhookBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
	}

	event := body.Event
	if event == nil || event.ID == 0 || event.StartDate == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing required fields: event.id and event.start_date",
		})
	}

	report, err := h.service.SyncEvent(c.Request().Context(), event)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Event upsert failed: " + err.Error(),
			"details": report,
		})
	}

	return c.JSON(http.StatusOK, webhookResponse{OK: true, Report: *report})
}

// verifySecret compares the header against the configured secret in constant
// time. No configured secret means every request is rejected.
func (h *WebhookHandler) verifySecret(header string) bool {
	if h.secret == "" || header == "" {
		return false
	}
	if len(header) != len(h.secret) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(header), []byte(h.secret)) == 1
}
