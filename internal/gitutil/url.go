package gitutil

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var prURLRegex = regexp.MustCompile(`^(?:https?://)?([^/]+)/([^/]+)/([^/]+)/pull/(\d+)$`)

// PullRequestURL is a parsed pull request web URL.
type PullRequestURL struct {
	Host   string
	Owner  string
	Repo   string
	Number int
}

// FullName returns the "owner/repo" slug.
func (u PullRequestURL) FullName() string {
	return u.Owner + "/" + u.Repo
}

// ParsePullRequestURL parses a pull request web URL of the form
// https://{host}/{owner}/{repo}/pull/{number}.
func ParsePullRequestURL(raw string) (*PullRequestURL, error) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "/")

	matches := prURLRegex.FindStringSubmatch(raw)
	if len(matches) != 5 {
		return nil, fmt.Errorf("invalid pull request URL format: %s", raw)
	}

	number, err := strconv.Atoi(matches[4])
	if err != nil || number <= 0 {
		return nil, fmt.Errorf("invalid pull request number '%s'", matches[4])
	}

	return &PullRequestURL{
		Host:   matches[1],
		Owner:  matches[2],
		Repo:   matches[3],
		Number: number,
	}, nil
}

// authenticatedURL embeds token as basic-auth credentials into an http(s)
// remote URL. Local paths and empty tokens pass through unchanged.
func authenticatedURL(repoURL, token string) (string, error) {
	if !strings.Contains(repoURL, "://") || token == "" {
		return repoURL, nil
	}

	if !strings.HasPrefix(repoURL, "https://") && !strings.HasPrefix(repoURL, "http://") {
		return "", fmt.Errorf("invalid repository URL: %s", repoURL)
	}

	parsedURL, err := url.Parse(repoURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse repository URL '%s': %w", repoURL, err)
	}
	parsedURL.User = url.UserPassword(tokenUser, token)
	return parsedURL.String(), nil
}
