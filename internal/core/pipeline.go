package core

import (
	"context"
	"errors"
	"fmt"
)

// ErrRefUnavailable is returned when the synthetic pull request ref does not
// exist on the remote. The pipeline treats it as a silent no-op.
var ErrRefUnavailable = errors.New("pull request ref unavailable")

// RefMode selects which synthetic pull request ref is materialized.
type RefMode string

const (
	// RefModeHead checks out the pull request's head commit.
	RefModeHead RefMode = "head"
	// RefModeMerge checks out the test-merge commit with the target branch.
	RefModeMerge RefMode = "merge"
)

// ParseRefMode validates a configured ref mode.
func ParseRefMode(s string) (RefMode, error) {
	switch m := RefMode(s); m {
	case RefModeHead, RefModeMerge:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported ref mode %q, must be %q or %q", s, RefModeHead, RefModeMerge)
	}
}

// PullRef names a synthetic ref such as "pull/12/head".
type PullRef struct {
	Number int
	Mode   RefMode
}

func (r PullRef) String() string {
	return fmt.Sprintf("pull/%d/%s", r.Number, r.Mode)
}

// Checkout is a working tree materialized at a pull request ref.
type Checkout struct {
	Dir    string
	Ref    PullRef
	Commit string
}

// PushRequest carries everything needed to publish a fix-up commit.
type PushRequest struct {
	Origin  *Repository
	Bot     *Identity
	Branch  string
	Message string
}

// Target is the input of one pipeline run.
type Target struct {
	Repo   *Repository
	Number int
	Bot    *Identity
	DryRun bool
}

// RefFetcher clones a repository into dir and force-checks out a pull request ref.
//
//go:generate mockgen -destination=../../mocks/mock_core.go -package=mocks . RefFetcher,Formatter,ChangeDetector,BranchPusher,PullRequestCommenter,RepositoryResolver,IdentityProvider,JobDispatcher,Job
type RefFetcher interface {
	FetchRef(ctx context.Context, dir, cloneURL string, ref PullRef) (*Checkout, error)
}

// Formatter rewrites files in place with the named tool, running inside dir.
type Formatter interface {
	Format(ctx context.Context, dir, tool string, files []string) error
}

// ChangeDetector lists tracked files that differ from the checked-out commit.
type ChangeDetector interface {
	ChangedFiles(ctx context.Context, checkout *Checkout) ([]string, error)
}

// BranchPusher commits the working tree changes and pushes them to the bot's fork.
type BranchPusher interface {
	CommitAndPush(ctx context.Context, checkout *Checkout, req PushRequest) (*Publication, error)
}

// PullRequestCommenter posts a comment on a pull request.
type PullRequestCommenter interface {
	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
}

// RepositoryResolver looks up repository metadata on the hosting platform.
type RepositoryResolver interface {
	GetRepository(ctx context.Context, owner, repo string) (*Repository, error)
}

// IdentityProvider returns the account the platform token belongs to.
type IdentityProvider interface {
	AuthenticatedIdentity(ctx context.Context) (*Identity, error)
}
