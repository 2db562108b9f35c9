// Package jobs runs the pull request formatting pipeline off the webhook
// request path.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/sevigo/clang-format-bot/internal/config"
	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/metrics"
	"github.com/sevigo/clang-format-bot/internal/policy"
	"github.com/sevigo/clang-format-bot/internal/workspace"
)

// Pipeline formats one pull request: snapshot, policy, selection, formatter,
// change detection and publication. Every run owns a fresh workspace that is
// removed before Run returns.
type Pipeline struct {
	cfg       config.FormatConfig
	fetcher   core.RefFetcher
	formatter core.Formatter
	detector  core.ChangeDetector
	pusher    core.BranchPusher
}

// NewPipeline wires a Pipeline from its collaborators.
func NewPipeline(cfg *config.Config, fetcher core.RefFetcher, formatter core.Formatter, detector core.ChangeDetector, pusher core.BranchPusher) *Pipeline {
	return &Pipeline{
		cfg:       cfg.Format,
		fetcher:   fetcher,
		formatter: formatter,
		detector:  detector,
		pusher:    pusher,
	}
}

// Run executes the pipeline for target. Silent no-op results are reported
// as outcomes; only unexpected failures are returned as errors.
func (p *Pipeline) Run(ctx context.Context, target core.Target) (outcome *core.Outcome, err error) {
	if target.Repo == nil {
		return nil, errors.New("target repository cannot be nil")
	}
	if target.Number <= 0 {
		return nil, fmt.Errorf("invalid pull request number %d", target.Number)
	}

	start := time.Now()
	defer func() {
		label := metrics.OutcomeError
		if err == nil {
			label = outcome.Kind.String()
		}
		metrics.ObserveRun(label, time.Since(start))
	}()
	log := clog.FromContext(ctx)

	ws, err := workspace.New(p.cfg.WorkspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	defer func() {
		if rmErr := ws.Remove(); rmErr != nil {
			log.Warnf("Failed to remove workspace %s: %v", ws.Path(), rmErr)
		}
	}()

	ref := core.PullRef{Number: target.Number, Mode: p.cfg.RefMode}
	var checkout *core.Checkout
	err = p.step(ctx, func(ctx context.Context) error {
		var err error
		checkout, err = p.fetcher.FetchRef(ctx, ws.Path(), target.Repo.CloneURL, ref)
		return err
	})
	if err != nil {
		if errors.Is(err, core.ErrRefUnavailable) {
			log.Infof("Skipping %s: %v", ref, err)
			return &core.Outcome{Kind: core.OutcomeRefUnavailable}, nil
		}
		return nil, fmt.Errorf("fetching %s: %w", ref, err)
	}

	pol, err := policy.Load(checkout.Dir)
	if err != nil {
		if errors.Is(err, policy.ErrNotConfigured) {
			log.Infof("Skipping %s: %v", target.Repo.FullName, err)
			return &core.Outcome{Kind: core.OutcomeNotConfigured}, nil
		}
		return nil, fmt.Errorf("loading policy: %w", err)
	}
	tool := pol.Tool()

	files, err := workspace.ListFiles(checkout.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	selected := pol.Select(files)
	if len(selected) == 0 {
		log.Infof("No files selected by policy")
		return &core.Outcome{Kind: core.OutcomeNoChangesNeeded, Tool: tool}, nil
	}

	log.Infof("Running %s on %d files", tool, len(selected))
	err = p.step(ctx, func(ctx context.Context) error {
		return p.formatter.Format(ctx, checkout.Dir, tool, selected)
	})
	if err != nil {
		return nil, fmt.Errorf("formatting: %w", err)
	}

	changed, err := p.detector.ChangedFiles(ctx, checkout)
	if err != nil {
		return nil, fmt.Errorf("detecting changes: %w", err)
	}
	if len(changed) == 0 {
		return &core.Outcome{Kind: core.OutcomeNoChangesNeeded, Tool: tool}, nil
	}
	if target.DryRun {
		return &core.Outcome{Kind: core.OutcomeDryRun, Tool: tool, Files: changed}, nil
	}

	req := core.PushRequest{
		Origin:  target.Repo,
		Bot:     target.Bot,
		Branch:  core.BranchName(target.Repo.Owner, target.Number),
		Message: core.CommitMessage(tool),
	}
	var pub *core.Publication
	err = p.step(ctx, func(ctx context.Context) error {
		var err error
		pub, err = p.pusher.CommitAndPush(ctx, checkout, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("publishing %s: %w", req.Branch, err)
	}

	return &core.Outcome{Kind: core.OutcomePublished, Tool: tool, Files: changed, Publication: pub}, nil
}

// step bounds a blocking step with the configured timeout.
func (p *Pipeline) step(ctx context.Context, fn func(context.Context) error) error {
	if p.cfg.StepTimeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, p.cfg.StepTimeout)
	defer cancel()
	return fn(ctx)
}
