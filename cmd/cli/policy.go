package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/clang-format-bot/internal/policy"
	"github.com/sevigo/clang-format-bot/internal/workspace"
)

var (
	policyYAML bool
	showAll    bool
)

var policyCmd = &cobra.Command{
	Use:   "policy [dir]",
	Short: "Show the formatting policy of a local checkout and the files it selects",
	Long: `Show the formatting policy declared in the .clang-format header of a local
checkout and list the files the bot would hand to the formatter.

Examples:
  clang-format-cli policy
  clang-format-cli policy --all ./my-repo
  clang-format-cli policy --yaml ./my-repo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPolicy,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	policyCmd.Flags().BoolVar(&policyYAML, "yaml", false, "Print the parsed policy as YAML")
	policyCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Also list files the policy skips")
	rootCmd.AddCommand(policyCmd)
}

func runPolicy(_ *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	pol, err := policy.Load(dir)
	if err != nil {
		if errors.Is(err, policy.ErrNotConfigured) {
			warnColor.Printf("Formatting is not configured in %s: %v\n", dir, err)
			dimColor.Printf("Supported versions: %s\n", strings.Join(policy.SupportedVersions, ", "))
			return nil
		}
		return err
	}

	if policyYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(pol)
	}

	files, err := workspace.ListFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	selected := pol.Select(files)

	header := lipgloss.JoinVertical(lipgloss.Left,
		field("tool", pol.Tool()),
		field("include", strings.Join(pol.Include, " ")),
		field("exclude", strings.Join(pol.Exclude, " ")),
		field("files", fmt.Sprintf("%d of %d selected", len(selected), len(files))),
	)
	fmt.Println(boxStyle.Render(header))

	if len(selected) == 0 {
		warnColor.Println("No files are selected by this policy.")
	}
	for _, f := range files {
		if pol.Matches(f) {
			fmt.Println(selectedStyle.Render("  + " + f))
		} else if showAll {
			fmt.Println(skippedStyle.Render("  - " + f))
		}
	}
	return nil
}
