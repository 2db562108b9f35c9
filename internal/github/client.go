// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/clang-format-bot/internal/core"
)

// Client defines the GitHub operations a formatting run needs.
type Client interface {
	core.RepositoryResolver
	core.IdentityProvider
	core.PullRequestCommenter
}

type gitHubClient struct {
	client *github.Client
	host   string
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client. host is the web host
// used to derive the bot's noreply email address.
func NewGitHubClient(client *github.Client, host string, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &gitHubClient{client: client, host: host, logger: logger}
}

// NewPATClient creates a new GitHub client authenticated with the bot account's
// Personal Access Token. A non-empty apiURL targets a GitHub Enterprise server.
func NewPATClient(ctx context.Context, ts oauth2.TokenSource, apiURL, host string, logger *slog.Logger) (Client, error) {
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)
	if apiURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
	}
	return NewGitHubClient(client, host, logger), nil
}

// GetRepository retrieves repository metadata, including its clone URL.
func (g *gitHubClient) GetRepository(ctx context.Context, owner, repo string) (*core.Repository, error) {
	r, _, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		g.logger.Error("failed to get repository", "owner", owner, "repo", repo, "error", err)
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}
	if r.GetCloneURL() == "" {
		return nil, fmt.Errorf("repository %s/%s has no clone URL", owner, repo)
	}
	return &core.Repository{
		Owner:    r.GetOwner().GetLogin(),
		Name:     r.GetName(),
		FullName: r.GetFullName(),
		CloneURL: r.GetCloneURL(),
	}, nil
}

// AuthenticatedIdentity returns the account the token belongs to.
func (g *gitHubClient) AuthenticatedIdentity(ctx context.Context) (*core.Identity, error) {
	user, _, err := g.client.Users.Get(ctx, "")
	if err != nil {
		g.logger.Error("failed to get authenticated user", "error", err)
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	if user.GetLogin() == "" {
		return nil, errors.New("authenticated user has no login")
	}
	return core.NewIdentity(user.GetLogin(), user.GetName(), g.host), nil
}

// CreateComment creates a new comment on a pull request.
func (g *gitHubClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &github.IssueComment{Body: &body}
	_, _, err := g.client.Issues.CreateComment(ctx, owner, repo, number, comment)
	if err != nil {
		g.logger.Error("failed to create comment", "owner", owner, "repo", repo, "pr", number, "error", err)
		return fmt.Errorf("failed to comment on %s/%s#%d: %w", owner, repo, number, err)
	}
	return nil
}
