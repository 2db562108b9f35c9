package core

import "fmt"

// OutcomeKind enumerates the terminal states of a pipeline run.
type OutcomeKind int

const (
	// OutcomeNotConfigured means the repository has no usable formatting policy.
	OutcomeNotConfigured OutcomeKind = iota
	// OutcomeRefUnavailable means the pull request ref could not be fetched,
	// typically because the pull request is closed or not mergeable.
	OutcomeRefUnavailable
	// OutcomeNoChangesNeeded means the selected files are already formatted.
	OutcomeNoChangesNeeded
	// OutcomeDryRun means changes were found but publishing was skipped.
	OutcomeDryRun
	// OutcomePublished means a fix-up commit was pushed.
	OutcomePublished
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNotConfigured:
		return "not_configured"
	case OutcomeRefUnavailable:
		return "ref_unavailable"
	case OutcomeNoChangesNeeded:
		return "no_changes_needed"
	case OutcomeDryRun:
		return "dry_run"
	case OutcomePublished:
		return "published"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result of a single pipeline run. Publication is set only
// for OutcomePublished; Tool and Files are set once the formatter has run.
type Outcome struct {
	Kind        OutcomeKind
	Tool        string
	Files       []string
	Publication *Publication
}

// Publication describes a pushed fix-up commit.
type Publication struct {
	Branch    string
	Commit    string
	CommitURL string
}

// BranchName returns the fork branch used for a pull request. It depends only
// on the origin owner and the pull request number so that reruns overwrite
// the same branch.
func BranchName(owner string, number int) string {
	return fmt.Sprintf("format-%s-pr-%d", owner, number)
}

// CommitMessage returns the fix-up commit message for a formatter tool.
func CommitMessage(tool string) string {
	return "Format using " + tool
}
