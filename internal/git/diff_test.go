package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	sampleDiff := "diff --git a/main.go b/main.go\n--- a/main.go\n+++ b/main.go\n@@ -1 +1 @@\n-old\n+new\n"

	t.Run("head diff is returned directly", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit("/repo", okResult(sampleDiff), "diff", "HEAD", "--", "main.go")

		diff, err := svc.Diff(context.Background(), "/repo", "main.go")
		require.NoError(t, err)
		require.Equal(t, sampleDiff, diff)
	})

	t.Run("empty head diff falls back to the index", func(t *testing.T) {
		dir := t.TempDir()
		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit(dir, okResult(""), "diff", "HEAD", "--", "main.go")
		execer.StubGit(dir, okResult(sampleDiff), "diff", "--cached", "--", "main.go")

		diff, err := svc.Diff(context.Background(), dir, "main.go")
		require.NoError(t, err)
		require.Equal(t, sampleDiff, diff)
	})

	t.Run("untracked content is synthesized as additions", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("one\ntwo\n"), 0o600))

		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit(dir, okResult(""), "diff", "HEAD", "--", "new.txt")
		execer.StubGit(dir, okResult(""), "diff", "--cached", "--", "new.txt")

		diff, err := svc.Diff(context.Background(), dir, "new.txt")
		require.NoError(t, err)
		require.Equal(t, "--- /dev/null\n+++ b/new.txt\n+one\n+two\n", diff)
	})

	t.Run("failed head diff falls back to the working tree", func(t *testing.T) {
		dir := t.TempDir()
		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit(dir, failResult("fatal: bad revision 'HEAD'"), "diff", "HEAD", "--", "main.go")
		execer.StubGit(dir, okResult(sampleDiff), "diff", "--", "main.go")

		diff, err := svc.Diff(context.Background(), dir, "main.go")
		require.NoError(t, err)
		require.Equal(t, sampleDiff, diff)
	})

	t.Run("untracked file in a repo without HEAD is synthesized", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("hello\n"), 0o600))

		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit(dir, failResult("fatal: bad revision 'HEAD'"), "diff", "HEAD", "--", "new.txt")
		execer.StubGit(dir, failResult("fatal: unusable index"), "diff", "--", "new.txt")
		execer.StubGit(dir, okResult("?? new.txt\n"), "status", "--porcelain", "new.txt")

		diff, err := svc.Diff(context.Background(), dir, "new.txt")
		require.NoError(t, err)
		require.Equal(t, "--- /dev/null\n+++ b/new.txt\n+hello\n", diff)
	})

	t.Run("tracked file with failing diffs is an error", func(t *testing.T) {
		dir := t.TempDir()
		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit(dir, failResult("fatal: bad revision 'HEAD'"), "diff", "HEAD", "--", "main.go")
		execer.StubGit(dir, failResult("fatal: unusable index"), "diff", "--", "main.go")
		execer.StubGit(dir, okResult(""), "status", "--porcelain", "main.go")

		_, err := svc.Diff(context.Background(), dir, "main.go")
		require.ErrorContains(t, err, "git diff failed")
	})
}

func TestFormatAddDiff(t *testing.T) {
	t.Run("empty content yields headers only", func(t *testing.T) {
		require.Equal(t, "--- /dev/null\n+++ b/a.txt\n", formatAddDiff("a.txt", ""))
	})

	t.Run("missing trailing newline still yields one line per line", func(t *testing.T) {
		require.Equal(t, "--- /dev/null\n+++ b/a.txt\n+x\n", formatAddDiff("a.txt", "x"))
	})
}
