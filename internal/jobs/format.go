package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chainguard-dev/clog"

	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/github"
)

// FormatJob handles one accepted pull request event: it resolves the
// repository and the bot identity, runs the pipeline and comments on the pull
// request when a fix-up commit was published.
type FormatJob struct {
	pipeline   *Pipeline
	resolver   core.RepositoryResolver
	identities core.IdentityProvider
	commenter  core.PullRequestCommenter
	logger     *slog.Logger

	mu  sync.Mutex
	bot *core.Identity
}

// NewFormatJob creates a FormatJob. All collaborators are required.
func NewFormatJob(pipeline *Pipeline, resolver core.RepositoryResolver, identities core.IdentityProvider, commenter core.PullRequestCommenter, logger *slog.Logger) *FormatJob {
	if pipeline == nil {
		panic("pipeline cannot be nil")
	}
	if resolver == nil || identities == nil || commenter == nil {
		panic("GitHub collaborators cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &FormatJob{
		pipeline:   pipeline,
		resolver:   resolver,
		identities: identities,
		commenter:  commenter,
		logger:     logger,
	}
}

// Run implements core.Job.
func (j *FormatJob) Run(ctx context.Context, event *core.PullRequestEvent) error {
	_, err := j.Execute(ctx, event, false)
	return err
}

// Execute runs the job and returns the pipeline outcome. With dryRun set the
// formatter runs but nothing is pushed or commented.
func (j *FormatJob) Execute(ctx context.Context, event *core.PullRequestEvent, dryRun bool) (*core.Outcome, error) {
	if event == nil {
		return nil, errors.New("event cannot be nil")
	}
	owner, name, err := core.SplitFullName(event.RepoFullName)
	if err != nil {
		return nil, err
	}
	log := clog.FromContext(ctx)

	repo, err := j.resolver.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("resolving repository: %w", err)
	}

	bot, err := j.identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving bot identity: %w", err)
	}

	outcome, err := j.pipeline.Run(ctx, core.Target{Repo: repo, Number: event.Number, Bot: bot, DryRun: dryRun})
	if err != nil {
		return nil, err
	}
	log.Infof("Formatting run finished: %s", outcome.Kind)

	if outcome.Kind != core.OutcomePublished {
		return outcome, nil
	}

	body := github.FormattingComment(outcome.Tool, outcome.Publication.CommitURL)
	if err := j.commenter.CreateComment(ctx, repo.Owner, repo.Name, event.Number, body); err != nil {
		return outcome, fmt.Errorf("commenting on pull request: %w", err)
	}
	log.Infof("Published %s as %s", outcome.Publication.Branch, outcome.Publication.CommitURL)
	return outcome, nil
}

// identity returns the bot identity, asking the platform only until the first
// successful lookup.
func (j *FormatJob) identity(ctx context.Context) (*core.Identity, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.bot != nil {
		return j.bot, nil
	}
	bot, err := j.identities.AuthenticatedIdentity(ctx)
	if err != nil {
		return nil, err
	}
	j.logger.Info("resolved bot identity", "login", bot.Login, "email", bot.Email)
	j.bot = bot
	return bot, nil
}
