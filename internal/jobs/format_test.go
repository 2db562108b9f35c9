package jobs

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/clang-format-bot/internal/config"
	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/formatter"
	"github.com/sevigo/clang-format-bot/internal/github"
	"github.com/sevigo/clang-format-bot/internal/gitutil"
	"github.com/sevigo/clang-format-bot/mocks"
)

type jobMocks struct {
	*pipelineMocks
	resolver   *mocks.MockRepositoryResolver
	identities *mocks.MockIdentityProvider
	commenter  *mocks.MockPullRequestCommenter
}

func newTestJob(t *testing.T) (*FormatJob, *jobMocks) {
	t.Helper()
	p, pm, _ := newTestPipeline(t, time.Minute)
	ctrl := gomock.NewController(t)
	m := &jobMocks{
		pipelineMocks: pm,
		resolver:      mocks.NewMockRepositoryResolver(ctrl),
		identities:    mocks.NewMockIdentityProvider(ctrl),
		commenter:     mocks.NewMockPullRequestCommenter(ctrl),
	}
	job := NewFormatJob(p, m.resolver, m.identities, m.commenter, slog.New(slog.DiscardHandler))
	return job, m
}

func testEvent() *core.PullRequestEvent {
	return &core.PullRequestEvent{
		DeliveryID:   "d-1",
		Action:       core.ActionOpened,
		Number:       12,
		RepoFullName: "octo/widgets",
	}
}

func TestFormatJobPublishesAndComments(t *testing.T) {
	job, m := newTestJob(t)
	target := testTarget()
	commitURL := "https://github.com/format-bot/widgets/commit/def456"

	m.resolver.EXPECT().GetRepository(gomock.Any(), "octo", "widgets").Return(target.Repo, nil)
	m.identities.EXPECT().AuthenticatedIdentity(gomock.Any()).Return(target.Bot, nil)
	m.fetcher.EXPECT().FetchRef(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(checkoutWith(sourceTree(), nil))
	m.formatter.EXPECT().Format(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.detector.EXPECT().ChangedFiles(gomock.Any(), gomock.Any()).Return([]string{"a.cpp"}, nil)
	m.pusher.EXPECT().CommitAndPush(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&core.Publication{Branch: "format-octo-pr-12", Commit: "def456", CommitURL: commitURL}, nil)
	m.commenter.EXPECT().
		CreateComment(gomock.Any(), "octo", "widgets", 12, github.FormattingComment("clang-format-3.8", commitURL)).
		Return(nil).
		Times(1)

	require.NoError(t, job.Run(context.Background(), testEvent()))
}

func TestFormatJobDoesNotCommentWithoutPublication(t *testing.T) {
	job, m := newTestJob(t)
	target := testTarget()

	m.resolver.EXPECT().GetRepository(gomock.Any(), "octo", "widgets").Return(target.Repo, nil)
	m.identities.EXPECT().AuthenticatedIdentity(gomock.Any()).Return(target.Bot, nil)
	m.fetcher.EXPECT().FetchRef(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(checkoutWith(sourceTree(), nil))
	m.formatter.EXPECT().Format(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.detector.EXPECT().ChangedFiles(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.commenter.EXPECT().CreateComment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	outcome, err := job.Execute(context.Background(), testEvent(), false)
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeNoChangesNeeded, outcome.Kind)
}

func TestFormatJobCachesIdentity(t *testing.T) {
	job, m := newTestJob(t)
	target := testTarget()

	m.resolver.EXPECT().GetRepository(gomock.Any(), "octo", "widgets").Return(target.Repo, nil).Times(2)
	m.identities.EXPECT().AuthenticatedIdentity(gomock.Any()).Return(target.Bot, nil).Times(1)
	m.fetcher.EXPECT().FetchRef(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, core.ErrRefUnavailable).Times(2)

	for range 2 {
		outcome, err := job.Execute(context.Background(), testEvent(), false)
		require.NoError(t, err)
		assert.Equal(t, core.OutcomeRefUnavailable, outcome.Kind)
	}
}

func TestFormatJobErrors(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("resolver", func(t *testing.T) {
		job, m := newTestJob(t)
		m.resolver.EXPECT().GetRepository(gomock.Any(), "octo", "widgets").Return(nil, errBoom)

		err := job.Run(context.Background(), testEvent())
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("identity", func(t *testing.T) {
		job, m := newTestJob(t)
		m.resolver.EXPECT().GetRepository(gomock.Any(), "octo", "widgets").Return(testTarget().Repo, nil)
		m.identities.EXPECT().AuthenticatedIdentity(gomock.Any()).Return(nil, errBoom)

		err := job.Run(context.Background(), testEvent())
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("comment", func(t *testing.T) {
		job, m := newTestJob(t)
		target := testTarget()
		m.resolver.EXPECT().GetRepository(gomock.Any(), "octo", "widgets").Return(target.Repo, nil)
		m.identities.EXPECT().AuthenticatedIdentity(gomock.Any()).Return(target.Bot, nil)
		m.fetcher.EXPECT().FetchRef(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(checkoutWith(sourceTree(), nil))
		m.formatter.EXPECT().Format(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.detector.EXPECT().ChangedFiles(gomock.Any(), gomock.Any()).Return([]string{"a.cpp"}, nil)
		m.pusher.EXPECT().CommitAndPush(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&core.Publication{Branch: "format-octo-pr-12", Commit: "x", CommitURL: "u"}, nil)
		m.commenter.EXPECT().CreateComment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errBoom)

		outcome, err := job.Execute(context.Background(), testEvent(), false)
		assert.ErrorIs(t, err, errBoom)
		require.NotNil(t, outcome)
		assert.Equal(t, core.OutcomePublished, outcome.Kind)
	})

	t.Run("bad repository name", func(t *testing.T) {
		job, _ := newTestJob(t)
		event := testEvent()
		event.RepoFullName = "widgets"
		assert.Error(t, job.Run(context.Background(), event))
	})

	t.Run("nil event", func(t *testing.T) {
		job, _ := newTestJob(t)
		assert.Error(t, job.Run(context.Background(), nil))
	})
}

// TestFormatJobDryRunWithGit runs the real git and formatter collaborators
// against a local origin repository.
func TestFormatJobDryRunWithGit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script formatter requires a unix shell")
	}

	// A stand-in formatter that collapses double spaces.
	bin := t.TempDir()
	script := "#!/bin/sh\nsed 's/  */ /g' \"$2\" > \"$2.tmp\" && mv \"$2.tmp\" \"$2\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "clang-format-3.8"), []byte(script), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	originDir := t.TempDir()
	repo, err := git.PlainInit(originDir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	for name, content := range map[string]string{
		".clang-format":     testPolicy,
		"a.cpp":             "int  main() {}\n",
		"include/lib.h":     "void f();\n",
		"third_party/b.cpp": "int  x;\n",
	} {
		p := filepath.Join(originDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		_, err := wt.Add(name)
		require.NoError(t, err)
	}
	head, err := wt.Commit("add sources", &git.CommitOptions{
		Author: &object.Signature{Name: "Dev", Email: "dev@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference("refs/pull/12/head", head)))

	gitClient := gitutil.NewClient(nil, "github.com")
	cfg := &config.Config{Format: config.FormatConfig{
		RefMode:       core.RefModeHead,
		WorkspaceRoot: t.TempDir(),
		Concurrency:   2,
		StepTimeout:   time.Minute,
	}}
	pipeline := NewPipeline(cfg, gitClient, formatter.NewInvoker(nil, 2), gitClient, gitClient)

	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockRepositoryResolver(ctrl)
	identities := mocks.NewMockIdentityProvider(ctrl)
	commenter := mocks.NewMockPullRequestCommenter(ctrl)
	resolver.EXPECT().GetRepository(gomock.Any(), "octo", "widgets").Return(&core.Repository{
		Owner:    "octo",
		Name:     "widgets",
		FullName: "octo/widgets",
		CloneURL: originDir,
	}, nil)
	identities.EXPECT().AuthenticatedIdentity(gomock.Any()).Return(core.NewIdentity("format-bot", "", "github.com"), nil)

	job := NewFormatJob(pipeline, resolver, identities, commenter, slog.New(slog.DiscardHandler))
	outcome, err := job.Execute(context.Background(), testEvent(), true)
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeDryRun, outcome.Kind)
	assert.Equal(t, "clang-format-3.8", outcome.Tool)
	assert.Equal(t, []string{"a.cpp"}, outcome.Files)
}

func TestNewFormatJobPanicsOnNil(t *testing.T) {
	p, _, _ := newTestPipeline(t, time.Minute)
	assert.Panics(t, func() { NewFormatJob(nil, nil, nil, nil, nil) })
	assert.Panics(t, func() { NewFormatJob(p, nil, nil, nil, slog.Default()) })
}
