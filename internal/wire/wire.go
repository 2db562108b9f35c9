//go:build wireinject
// +build wireinject

package wire

import (
	"context"
	"log/slog"

	"github.com/google/wire"
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

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		jobs.NewPipeline,
		jobs.NewFormatJob,
		provideSlogLogger,
		provideTokenSource,
		provideGitHubClient,
		provideGitClient,
		provideFormatter,
		provideDispatcher,
		wire.Bind(new(core.RefFetcher), new(*gitutil.Client)),
		wire.Bind(new(core.ChangeDetector), new(*gitutil.Client)),
		wire.Bind(new(core.BranchPusher), new(*gitutil.Client)),
		wire.Bind(new(core.Formatter), new(*formatter.Invoker)),
		wire.Bind(new(core.RepositoryResolver), new(github.Client)),
		wire.Bind(new(core.IdentityProvider), new(github.Client)),
		wire.Bind(new(core.PullRequestCommenter), new(github.Client)),
		wire.Bind(new(core.JobDispatcher), new(*jobs.Dispatcher)),
		wire.Bind(new(core.Job), new(*jobs.FormatJob)),
	)
	return &app.App{}, nil, nil
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
