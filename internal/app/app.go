// Package app initializes and orchestrates the main components of the
// formatting bot. It ties together the configuration, server and job runner.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/clang-format-bot/internal/config"
	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/gitutil"
	"github.com/sevigo/clang-format-bot/internal/jobs"
	"github.com/sevigo/clang-format-bot/internal/logger"
	"github.com/sevigo/clang-format-bot/internal/server"
)

// App holds the main application components.
type App struct {
	cfg        *config.Config
	server     *server.Server
	dispatcher *jobs.Dispatcher
	job        *jobs.FormatJob
	logger     *slog.Logger
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, srv *server.Server, dispatcher *jobs.Dispatcher, job *jobs.FormatJob, logger *slog.Logger) *App {
	return &App{
		cfg:        cfg,
		server:     srv,
		dispatcher: dispatcher,
		job:        job,
		logger:     logger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting clang-format bot",
		"port", a.cfg.Server.Port,
		"max_concurrent_runs", a.cfg.Server.MaxConcurrentRuns,
		"ref_mode", a.cfg.Format.RefMode,
		"target_repo", a.cfg.Scope.Target,
		"allowed_repos", a.cfg.Scope.Allowed)

	if a.cfg.Scope.Empty() {
		a.logger.Warn("neither TARGET_REPO nor ALLOWED_REPOS is set, every pull request delivery will be ignored")
	}
	if a.cfg.GitHub.WebhookSecret == "" {
		a.logger.Warn("GITHUB_WEBHOOK_SECRET is not set, webhook signatures are not verified")
	}

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down clang-format bot")

	// Stop the HTTP server first to prevent new incoming deliveries.
	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	// Let in-flight runs finish.
	a.dispatcher.Stop()

	if serverErr != nil {
		return serverErr
	}
	a.logger.Info("clang-format bot stopped successfully")
	return nil
}

// FormatPullRequest runs the formatting job for a single pull request URL in
// the foreground, outside the webhook flow.
func (a *App) FormatPullRequest(ctx context.Context, prURL string, dryRun bool) (*core.Outcome, error) {
	pr, err := gitutil.ParsePullRequestURL(prURL)
	if err != nil {
		return nil, err
	}
	event := &core.PullRequestEvent{
		DeliveryID:   "cli",
		Action:       core.ActionSynchronize,
		Number:       pr.Number,
		RepoFullName: pr.FullName(),
	}
	ctx = logger.Attach(ctx, a.logger, "repo", event.RepoFullName, "pr", event.Number)

	outcome, err := a.job.Execute(ctx, event, dryRun)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", prURL, err)
	}
	return outcome, nil
}
