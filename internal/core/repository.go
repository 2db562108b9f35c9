package core

import (
	"fmt"
	"path"
	"strings"
)

// Repository identifies a hosted repository the bot operates on.
type Repository struct {
	Owner    string
	Name     string
	FullName string
	CloneURL string
}

// Identity is the account the bot commits and pushes as.
type Identity struct {
	Login string
	Name  string
	Email string
}

// NewIdentity builds the bot identity for an account on host. The display
// name falls back to the login and the email is the host's noreply address.
func NewIdentity(login, name, host string) *Identity {
	if name == "" {
		name = login
	}
	return &Identity{
		Login: login,
		Name:  name,
		Email: fmt.Sprintf("%s@users.noreply.%s", login, host),
	}
}

// SplitFullName splits an "owner/name" slug.
func SplitFullName(fullName string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository full name %q", fullName)
	}
	return owner, name, nil
}

// RepositoryScope decides which repositories a deployment accepts deliveries
// for. Target selects single-repository mode; otherwise Allowed holds
// "owner/name" or "owner/*" patterns. An empty scope accepts nothing.
type RepositoryScope struct {
	Target  string
	Allowed []string
}

// Accepts reports whether deliveries for fullName may run.
func (s RepositoryScope) Accepts(fullName string) bool {
	if s.Target != "" {
		return strings.EqualFold(s.Target, fullName)
	}
	candidate := strings.ToLower(fullName)
	for _, pattern := range s.Allowed {
		if ok, err := path.Match(strings.ToLower(pattern), candidate); err == nil && ok {
			return true
		}
	}
	return false
}

// Empty reports whether the scope accepts no repository at all.
func (s RepositoryScope) Empty() bool {
	return s.Target == "" && len(s.Allowed) == 0
}
