// Package gitutil materializes pull request refs in a workspace and publishes
// formatting fix-ups to the bot's fork.
package gitutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"golang.org/x/oauth2"

	"github.com/sevigo/clang-format-bot/internal/core"
)

const (
	originRemote = "origin"
	forkRemote   = "fork"
	// tokenUser is the basic-auth user name GitHub accepts alongside a token.
	tokenUser = "x-access-token"
)

// Client performs the git side of a formatting run.
type Client struct {
	tokenSource oauth2.TokenSource
	host        string
}

// NewClient returns a Client authenticating with tokenSource. A nil token
// source, or one yielding an empty token, talks to remotes anonymously.
func NewClient(tokenSource oauth2.TokenSource, host string) *Client {
	if host == "" {
		host = "github.com"
	}
	return &Client{tokenSource: tokenSource, host: host}
}

// FetchRef clones cloneURL into dir without checking out, fetches the
// synthetic pull request ref and force-checks out its commit on a detached
// HEAD. A ref missing on the remote yields core.ErrRefUnavailable.
func (c *Client) FetchRef(ctx context.Context, dir, cloneURL string, ref core.PullRef) (*core.Checkout, error) {
	log := clog.FromContext(ctx)

	token, err := c.token()
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}
	auth := basicAuth(token)

	log.Infof("Cloning %s", cloneURL)
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:        cloneURL,
		Auth:       auth,
		NoCheckout: true,
		Tags:       git.NoTags,
	})
	if err != nil {
		return nil, fmt.Errorf("cloning repository: %w", err)
	}

	local := remotePullRef(ref)
	spec := gitconfig.RefSpec(fmt.Sprintf("+refs/%s:%s", ref, local))

	log.Infof("Fetching %s", spec)
	err = repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: originRemote,
		RefSpecs:   []gitconfig.RefSpec{spec},
		Auth:       auth,
		Tags:       git.NoTags,
		Force:      true,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		var missing git.NoMatchingRefSpecError
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: %s", core.ErrRefUnavailable, ref)
		}
		return nil, fmt.Errorf("fetching %s: %w", ref, err)
	}

	fetched, err := repo.Reference(local, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, fmt.Errorf("%w: %s", core.ErrRefUnavailable, ref)
		}
		return nil, fmt.Errorf("resolving %s: %w", local, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{Hash: fetched.Hash(), Force: true}); err != nil {
		return nil, fmt.Errorf("checking out %s: %w", fetched.Hash(), err)
	}

	log.Debugf("Checked out %s at %s", ref, fetched.Hash())
	return &core.Checkout{Dir: dir, Ref: ref, Commit: fetched.Hash().String()}, nil
}

func remotePullRef(ref core.PullRef) plumbing.ReferenceName {
	return plumbing.NewRemoteReferenceName(originRemote, ref.String())
}

func (c *Client) token() (string, error) {
	if c.tokenSource == nil {
		return "", nil
	}
	tok, err := c.tokenSource.Token()
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

func basicAuth(token string) transport.AuthMethod {
	if token == "" {
		return nil
	}
	return &githttp.BasicAuth{Username: tokenUser, Password: token}
}
