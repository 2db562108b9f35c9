// Package handler provides the HTTP handlers of the formatting bot.
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/clang-format-bot/internal/config"
	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/jobs"
	"github.com/sevigo/clang-format-bot/internal/metrics"
)

const (
	eventPing        = "ping"
	eventPullRequest = "pull_request"
)

// WebhookHandler processes incoming webhooks from GitHub.
type WebhookHandler struct {
	secret     []byte
	scope      core.RepositoryScope
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewWebhookHandler creates a new webhook handler with the given configuration and dispatcher.
func NewWebhookHandler(cfg *config.Config, dispatcher core.JobDispatcher, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		secret:     []byte(cfg.GitHub.WebhookSecret),
		scope:      cfg.Scope,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes GitHub webhook requests. Only pull_request deliveries for
// repositories in scope start a run; the run continues after the response.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	eventType := github.WebHookType(r)
	deliveryID := github.DeliveryID(r)
	logger := h.logger.With("event", eventType, "delivery", deliveryID)

	payload, err := github.ValidatePayload(r, h.secret)
	if err != nil {
		metrics.ObserveDelivery(eventType, metrics.ResultRejected)
		if len(h.secret) > 0 {
			logger.Warn("invalid webhook payload signature", "error", err)
			http.Error(w, "Invalid signature", http.StatusUnauthorized)
			return
		}
		logger.Warn("invalid webhook payload", "error", err)
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	switch eventType {
	case eventPing:
		metrics.ObserveDelivery(eventType, metrics.ResultAccepted)
		_, _ = fmt.Fprint(w, "pong")
	case eventPullRequest:
		h.handlePullRequest(w, r, logger, deliveryID, payload)
	default:
		metrics.ObserveDelivery(eventType, metrics.ResultIgnored)
		logger.Debug("ignoring unhandled webhook event type")
		_, _ = fmt.Fprint(w, "Event type not handled")
	}
}

func (h *WebhookHandler) handlePullRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger, deliveryID string, payload []byte) {
	raw, err := github.ParseWebHook(eventPullRequest, payload)
	if err != nil {
		metrics.ObserveDelivery(eventPullRequest, metrics.ResultRejected)
		logger.Warn("could not parse webhook", "error", err)
		http.Error(w, "Could not parse webhook", http.StatusBadRequest)
		return
	}
	prEvent, ok := raw.(*github.PullRequestEvent)
	if !ok {
		metrics.ObserveDelivery(eventPullRequest, metrics.ResultRejected)
		http.Error(w, "Could not parse webhook", http.StatusBadRequest)
		return
	}

	event, err := core.EventFromPullRequest(prEvent, deliveryID)
	if err != nil {
		if errors.Is(err, core.ErrIgnoredAction) {
			metrics.ObserveDelivery(eventPullRequest, metrics.ResultIgnored)
			logger.Debug("ignoring pull request event", "reason", err.Error())
			_, _ = fmt.Fprint(w, "Action ignored")
			return
		}
		metrics.ObserveDelivery(eventPullRequest, metrics.ResultRejected)
		logger.Warn("malformed pull request event", "error", err)
		http.Error(w, "Malformed pull request event", http.StatusBadRequest)
		return
	}
	logger = logger.With("repo", event.RepoFullName, "pr", event.Number)

	if !h.scope.Accepts(event.RepoFullName) {
		metrics.ObserveDelivery(eventPullRequest, metrics.ResultIgnored)
		logger.Info("ignoring pull request outside the configured repositories")
		_, _ = fmt.Fprint(w, "Repository not handled")
		return
	}

	if err := h.dispatcher.Dispatch(r.Context(), event); err != nil {
		if errors.Is(err, jobs.ErrAtCapacity) || errors.Is(err, jobs.ErrStopped) {
			metrics.ObserveDelivery(eventPullRequest, metrics.ResultBusy)
			http.Error(w, "Too many formatting runs in flight", http.StatusServiceUnavailable)
			return
		}
		metrics.ObserveDelivery(eventPullRequest, metrics.ResultRejected)
		logger.Error("failed to dispatch formatting run", "error", err)
		http.Error(w, "Failed to start formatting run", http.StatusInternalServerError)
		return
	}

	metrics.ObserveDelivery(eventPullRequest, metrics.ResultAccepted)
	logger.Info("formatting run dispatched")
	w.WriteHeader(http.StatusAccepted)
	_, _ = fmt.Fprint(w, "Formatting run accepted")
}
