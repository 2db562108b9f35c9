package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/github"
	"github.com/sevigo/clang-format-bot/internal/wire"
)

var dryRun bool

var formatCmd = &cobra.Command{
	Use:   "format [pr-url]",
	Short: "Run the formatting pipeline for a GitHub Pull Request",
	Long: `Run the formatting pipeline for a GitHub Pull Request.

The format command fetches the pull request ref, applies the repository's
.clang-format policy and, unless --dry-run is given, pushes a fix-up commit
to the bot's fork and comments on the pull request.

Examples:
  clang-format-cli format https://github.com/owner/repo/pull/123
  clang-format-cli format --dry-run https://github.com/owner/repo/pull/123`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	formatCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Format without pushing or commenting")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	prURL := args[0]
	start := time.Now()

	titleColor.Println("clang-format bot")
	dimColor.Printf("   Target: %s\n\n", prURL)

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: Set GH_TOKEN or pass --github-token", err)
	}
	defer cleanup()

	outcome, err := appInstance.FormatPullRequest(ctx, prURL, dryRun)
	if err != nil {
		return err
	}

	printOutcome(outcome)
	dimColor.Printf("\nTotal time: %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func printOutcome(outcome *core.Outcome) {
	switch outcome.Kind {
	case core.OutcomeNotConfigured:
		warnColor.Println("Formatting is not configured for this repository.")
	case core.OutcomeRefUnavailable:
		warnColor.Println("The pull request ref is unavailable; the pull request may be closed.")
	case core.OutcomeNoChangesNeeded:
		successColor.Printf("Already formatted according to %s.\n", outcome.Tool)
	case core.OutcomeDryRun:
		warnColor.Printf("%s would change %d file(s):\n", outcome.Tool, len(outcome.Files))
		for _, f := range outcome.Files {
			boldColor.Printf("  %s\n", f)
		}
		renderComment(github.FormattingComment(outcome.Tool, "<commit-url>"))
	case core.OutcomePublished:
		successColor.Printf("Pushed %s to %s\n", outcome.Publication.Commit, outcome.Publication.Branch)
		for _, f := range outcome.Files {
			boldColor.Printf("  %s\n", f)
		}
		dimColor.Printf("%s\n", outcome.Publication.CommitURL)
	}
}

// renderComment previews the pull request comment in the terminal.
func renderComment(body string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err == nil {
		var out string
		if out, err = r.Render(body); err == nil {
			titleColor.Println("\nComment preview:")
			fmt.Print(out)
			return
		}
	}
	fmt.Println(body)
}
