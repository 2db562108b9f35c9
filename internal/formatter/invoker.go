// Package formatter runs the versioned clang-format binary over a set of files
// inside a workspace.
package formatter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrToolFailed is returned when the formatter binary is missing or exits
// with a non-zero status.
var ErrToolFailed = errors.New("formatter failed")

// Invoker runs one formatter process per file.
type Invoker struct {
	logger      *slog.Logger
	concurrency int
}

// NewInvoker returns an Invoker running at most concurrency processes at once.
func NewInvoker(logger *slog.Logger, concurrency int) *Invoker {
	if logger == nil {
		logger = slog.Default()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Invoker{logger: logger, concurrency: concurrency}
}

// Format rewrites every file in place with "<tool> -i ./<file>", running with
// dir as the working directory. Files are forward-slash paths relative to dir.
// The first failure cancels the remaining invocations.
func (i *Invoker) Format(ctx context.Context, dir, tool string, files []string) error {
	if len(files) == 0 {
		return nil
	}

	bin, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%w: %s not found: %w", ErrToolFailed, tool, err)
	}

	i.logger.DebugContext(ctx, "running formatter", "tool", tool, "files", len(files), "concurrency", i.concurrency)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)
	for _, file := range files {
		g.Go(func() error {
			return run(ctx, bin, dir, file)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

func run(ctx context.Context, bin, dir, file string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	// The "./" prefix keeps a file named like a flag from being parsed as one.
	cmd := exec.CommandContext(ctx, bin, "-i", "./"+file)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%w: %s on %s: %s: %w", ErrToolFailed, bin, file, msg, err)
		}
		return fmt.Errorf("%w: %s on %s: %w", ErrToolFailed, bin, file, err)
	}
	return nil
}
