package workspace

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewAndRemove(t *testing.T) {
	root := t.TempDir()

	ws, err := New(filepath.Join(root, "runs"))
	require.NoError(t, err)
	assert.DirExists(t, ws.Path())
	assert.True(t, strings.HasPrefix(filepath.Base(ws.Path()), "clang-format-"))

	other, err := New(filepath.Join(root, "runs"))
	require.NoError(t, err)
	assert.NotEqual(t, ws.Path(), other.Path())

	writeFile(t, ws.Path(), "nested/dir/a.cpp", "int main() {}")
	require.NoError(t, ws.Remove())
	assert.NoDirExists(t, ws.Path())
	assert.DirExists(t, other.Path())

	// Removing twice is harmless.
	require.NoError(t, ws.Remove())
	require.NoError(t, other.Remove())
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.cpp", "")
	writeFile(t, root, "README.md", "")
	writeFile(t, root, "third_party/b.h", "")
	writeFile(t, root, ".git/config", "")
	writeFile(t, root, ".git/objects/ab/cdef", "")
	writeFile(t, root, ".github/workflows/ci.yml", "")
	writeFile(t, root, ".gitignore", "")
	writeFile(t, root, ".clang-format", "")
	writeFile(t, root, "vendor/sub/.git", "gitdir: ../../.git/modules/sub")
	writeFile(t, root, "vendor/sub/x.cc", "")
	writeFile(t, root, "tools/.git/HEAD", "")

	got, err := ListFiles(root)
	require.NoError(t, err)

	want := []string{
		".clang-format",
		".github/workflows/ci.yml",
		".gitignore",
		"README.md",
		"a.cpp",
		"third_party/b.h",
		"vendor/sub/x.cc",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListFiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestListFilesSkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, outside, "secret.h", "")
	writeFile(t, root, "a.h", "")
	require.NoError(t, os.Symlink(filepath.Join(outside, "secret.h"), filepath.Join(root, "link.h")))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linkdir")))

	got, err := ListFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.h"}, got)
}

func TestListFilesMissingRoot(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
