package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestClient(t *testing.T, mux *http.ServeMux) Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	gh := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base
	return NewGitHubClient(gh, "github.com", nil)
}

func TestGetRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/widgets", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{
			"name": "widgets",
			"full_name": "octo/widgets",
			"owner": {"login": "octo"},
			"clone_url": "https://github.com/octo/widgets.git"
		}`)
	})
	c := newTestClient(t, mux)

	repo, err := c.GetRepository(context.Background(), "octo", "widgets")
	require.NoError(t, err)
	assert.Equal(t, "octo", repo.Owner)
	assert.Equal(t, "widgets", repo.Name)
	assert.Equal(t, "octo/widgets", repo.FullName)
	assert.Equal(t, "https://github.com/octo/widgets.git", repo.CloneURL)
}

func TestGetRepositoryNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/missing", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})
	c := newTestClient(t, mux)

	_, err := c.GetRepository(context.Background(), "octo", "missing")
	assert.Error(t, err)
}

func TestAuthenticatedIdentity(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantName  string
		wantEmail string
		wantErr   bool
	}{
		{
			name:      "with display name",
			body:      `{"login": "format-bot", "name": "Format Bot"}`,
			wantName:  "Format Bot",
			wantEmail: "format-bot@users.noreply.github.com",
		},
		{
			name:      "name falls back to login",
			body:      `{"login": "format-bot"}`,
			wantName:  "format-bot",
			wantEmail: "format-bot@users.noreply.github.com",
		},
		{
			name:    "missing login",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /user", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})
			c := newTestClient(t, mux)

			id, err := c.AuthenticatedIdentity(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "format-bot", id.Login)
			assert.Equal(t, tt.wantName, id.Name)
			assert.Equal(t, tt.wantEmail, id.Email)
		})
	}
}

func TestCreateComment(t *testing.T) {
	var got github.IssueComment
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/octo/widgets/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 1}`)
	})
	c := newTestClient(t, mux)

	require.NoError(t, c.CreateComment(context.Background(), "octo", "widgets", 7, "hello"))
	assert.Equal(t, "hello", got.GetBody())
}

func TestCreateCommentFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/octo/widgets/issues/7/comments", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Forbidden"}`, http.StatusForbidden)
	})
	c := newTestClient(t, mux)

	assert.Error(t, c.CreateComment(context.Background(), "octo", "widgets", 7, "hello"))
}

func TestNewPATClientEnterprise(t *testing.T) {
	var auth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v3/user", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"login": "format-bot"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "s3cret"})
	c, err := NewPATClient(context.Background(), ts, srv.URL, "git.example.com", nil)
	require.NoError(t, err)

	id, err := c.AuthenticatedIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "format-bot@users.noreply.git.example.com", id.Email)
	assert.Equal(t, "Bearer s3cret", auth)
}
