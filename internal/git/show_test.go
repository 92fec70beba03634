package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitFiles(t *testing.T) {
	t.Run("parses name-status output", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit("/repo", okResult("M\tmain.go\nA\tparser.go\nD\told.go\n"),
			"show", "--name-status", "--format=", "abc123")

		files, err := svc.CommitFiles(context.Background(), "/repo", "abc123")
		require.NoError(t, err)
		require.Equal(t, []CommitFile{
			{Status: "M", Path: "main.go"},
			{Status: "A", Path: "parser.go"},
			{Status: "D", Path: "old.go"},
		}, files)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit("/repo", okResult("\nM\tmain.go\n\n"),
			"show", "--name-status", "--format=", "abc123")

		files, err := svc.CommitFiles(context.Background(), "/repo", "abc123")
		require.NoError(t, err)
		require.Len(t, files, 1)
	})

	t.Run("bad hash surfaces stderr", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{})
		execer.StubGit("/repo", failResult("fatal: bad object nope"),
			"show", "--name-status", "--format=", "nope")

		_, err := svc.CommitFiles(context.Background(), "/repo", "nope")
		require.ErrorContains(t, err, "git show failed")
	})
}

func TestCommitFileDiff(t *testing.T) {
	svc, execer := newFakeService(&fakeRefStore{})
	diff := "diff --git a/main.go b/main.go\n@@ -1 +1 @@\n-old\n+new\n"
	execer.StubGit("/repo", okResult(diff), "show", "--format=", "abc123", "--", "main.go")

	out, err := svc.CommitFileDiff(context.Background(), "/repo", "abc123", "main.go")
	require.NoError(t, err)
	require.Equal(t, diff, out)
}
