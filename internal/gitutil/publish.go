package gitutil

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/sevigo/clang-format-bot/internal/core"
)

// forkURL resolves the push URL of the bot's fork. Tests override it to point
// at a local bare repository.
var forkURL = defaultForkURL

func defaultForkURL(host, login, repo string) string {
	return fmt.Sprintf("https://%s/%s/%s.git", host, login, repo)
}

// ChangedFiles lists tracked files whose working tree content differs from the
// checked-out commit, sorted. Untracked files are ignored.
func (c *Client) ChangedFiles(_ context.Context, checkout *core.Checkout) ([]string, error) {
	repo, err := git.PlainOpen(checkout.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", checkout.Dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	modified, deleted, err := trackedChanges(wt)
	if err != nil {
		return nil, err
	}
	changed := append(modified, deleted...)
	sort.Strings(changed)
	return changed, nil
}

func trackedChanges(wt *git.Worktree) (modified, deleted []string, err error) {
	status, err := wt.Status()
	if err != nil {
		return nil, nil, fmt.Errorf("getting worktree status: %w", err)
	}
	for path, s := range status {
		switch s.Worktree {
		case git.Modified:
			modified = append(modified, path)
		case git.Deleted:
			deleted = append(deleted, path)
		}
	}
	sort.Strings(modified)
	sort.Strings(deleted)
	return modified, deleted, nil
}

// CommitAndPush commits every tracked change in the checkout as the bot,
// points req.Branch at the commit and force-pushes it to the bot's fork of
// the origin repository.
func (c *Client) CommitAndPush(ctx context.Context, checkout *core.Checkout, req core.PushRequest) (*core.Publication, error) {
	switch {
	case req.Origin == nil:
		return nil, errors.New("origin repository cannot be nil")
	case req.Bot == nil || req.Bot.Login == "":
		return nil, errors.New("bot identity cannot be empty")
	case req.Branch == "":
		return nil, errors.New("branch name cannot be empty")
	case req.Message == "":
		return nil, errors.New("commit message cannot be empty")
	}
	log := clog.FromContext(ctx)

	repo, err := git.PlainOpen(checkout.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", checkout.Dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	modified, deleted, err := trackedChanges(wt)
	if err != nil {
		return nil, err
	}
	if len(modified)+len(deleted) == 0 {
		return nil, errors.New("no changes to commit")
	}
	for _, path := range modified {
		if _, err := wt.Add(path); err != nil {
			return nil, fmt.Errorf("staging %s: %w", path, err)
		}
	}
	for _, path := range deleted {
		if _, err := wt.Remove(path); err != nil {
			return nil, fmt.Errorf("staging removal of %s: %w", path, err)
		}
	}

	sig := &object.Signature{Name: req.Bot.Name, Email: req.Bot.Email, When: time.Now()}
	hash, err := wt.Commit(req.Message, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	branch := plumbing.NewBranchReferenceName(req.Branch)
	if err := repo.Storer.SetReference(plumbing.NewHashReference(branch, hash)); err != nil {
		return nil, fmt.Errorf("setting branch reference: %w", err)
	}

	token, err := c.token()
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}
	if err := c.addForkRemote(repo, req, token); err != nil {
		return nil, err
	}

	refSpec := gitconfig.RefSpec(fmt.Sprintf("+%s:%s", branch, branch))
	log.Infof("Force pushing %s to %s/%s", req.Branch, req.Bot.Login, req.Origin.Name)
	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: forkRemote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Auth:       basicAuth(token),
		Force:      true,
	})
	if err != nil {
		if !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil, fmt.Errorf("force pushing %s: %w", req.Branch, err)
		}
		log.Infof("Branch %s already up to date", req.Branch)
	}

	return &core.Publication{
		Branch:    req.Branch,
		Commit:    hash.String(),
		CommitURL: c.CommitURL(req.Bot.Login, req.Origin.Name, hash.String()),
	}, nil
}

// CommitURL returns the browsable URL of a commit on the bot's fork.
func (c *Client) CommitURL(login, repo, sha string) string {
	return fmt.Sprintf("https://%s/%s/%s/commit/%s", c.host, login, repo, sha)
}

func (c *Client) addForkRemote(repo *git.Repository, req core.PushRequest, token string) error {
	remoteURL, err := authenticatedURL(forkURL(c.host, req.Bot.Login, req.Origin.Name), token)
	if err != nil {
		return err
	}
	if err := repo.DeleteRemote(forkRemote); err != nil && !errors.Is(err, git.ErrRemoteNotFound) {
		return fmt.Errorf("removing stale %s remote: %w", forkRemote, err)
	}
	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{Name: forkRemote, URLs: []string{remoteURL}}); err != nil {
		return fmt.Errorf("adding %s remote: %w", forkRemote, err)
	}
	return nil
}
