// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"

	"github.com/sevigo/clang-format-bot/internal/app"
	"github.com/sevigo/clang-format-bot/internal/config"
	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/formatter"
	"github.com/sevigo/clang-format-bot/internal/github"
	"github.com/sevigo/clang-format-bot/internal/gitutil"
	"github.com/sevigo/clang-format-bot/internal/jobs"
	"github.com/sevigo/clang-format-bot/internal/logger"
	"github.com/sevigo/clang-format-bot/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	slogLogger := provideSlogLogger(cfg)

	// GitHub access
	tokenSource := provideTokenSource(cfg)
	ghClient, err := provideGitHubClient(ctx, cfg, tokenSource, slogLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	gitClient := provideGitClient(cfg, tokenSource)

	// Pipeline
	invoker := provideFormatter(cfg, slogLogger)
	pipeline := jobs.NewPipeline(cfg, gitClient, invoker, gitClient, gitClient)
	formatJob := jobs.NewFormatJob(pipeline, ghClient, ghClient, ghClient, slogLogger)

	// Dispatcher and HTTP server
	dispatcher := provideDispatcher(ctx, formatJob, cfg, slogLogger)
	httpServer := server.NewServer(ctx, cfg, dispatcher, slogLogger)

	application := app.NewApp(cfg, httpServer, dispatcher, formatJob, slogLogger)
	return application, func() {}, nil
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logger.NewLogger(cfg.Logging, nil)
}

func provideTokenSource(cfg *config.Config) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token})
}

func provideGitHubClient(ctx context.Context, cfg *config.Config, ts oauth2.TokenSource, logger *slog.Logger) (github.Client, error) {
	return github.NewPATClient(ctx, ts, cfg.GitHub.APIURL, cfg.GitHub.Host, logger)
}

func provideGitClient(cfg *config.Config, ts oauth2.TokenSource) *gitutil.Client {
	return gitutil.NewClient(ts, cfg.GitHub.Host)
}

func provideFormatter(cfg *config.Config, logger *slog.Logger) *formatter.Invoker {
	return formatter.NewInvoker(logger, cfg.Format.Concurrency)
}

func provideDispatcher(ctx context.Context, job core.Job, cfg *config.Config, logger *slog.Logger) *jobs.Dispatcher {
	return jobs.NewDispatcher(ctx, job, cfg.Server.MaxConcurrentRuns, logger)
}
