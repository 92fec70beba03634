package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateTag(t *testing.T) {
	origin := Remote{Name: "origin", URL: "git@example.com:a/b.git"}
	fork := Remote{Name: "fork", URL: "git@example.com:me/b.git"}

	t.Run("annotated tag pushed to origin", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{remotes: []Remote{fork, origin}})

		err := svc.CreateTag(context.Background(), "/repo", "v1.0", "abc123", "first release", false)
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "tag", "-a", "v1.0", "-m", "first release", "abc123"))
		require.Equal(t, 1, execer.GitCallCount("/repo", "push", "origin", "v1.0"))
	})

	t.Run("blank message makes a lightweight tag", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{remotes: []Remote{origin}})

		err := svc.CreateTag(context.Background(), "/repo", "v1.0", "abc123", "   ", false)
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "tag", "v1.0", "abc123"))
	})

	t.Run("push all sends every tag", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{remotes: []Remote{origin}})

		err := svc.CreateTag(context.Background(), "/repo", "v1.0", "abc123", "", true)
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "push", "--tags"))
		require.Equal(t, 0, execer.GitCallCount("/repo", "push", "origin", "v1.0"))
	})

	t.Run("no origin falls back to the first remote", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{remotes: []Remote{fork}})

		err := svc.CreateTag(context.Background(), "/repo", "v1.0", "abc123", "", false)
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "push", "fork", "v1.0"))
	})

	t.Run("no remotes leaves the tag local", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{})

		err := svc.CreateTag(context.Background(), "/repo", "v1.0", "abc123", "", false)
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "tag", "v1.0", "abc123"))
		for _, call := range execer.Calls() {
			require.NotContains(t, call.Args, "push")
		}
	})

	t.Run("tag failure surfaces without pushing", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{remotes: []Remote{origin}})
		execer.StubGit("/repo", failResult("fatal: tag 'v1.0' already exists"), "tag", "v1.0", "abc123")

		err := svc.CreateTag(context.Background(), "/repo", "v1.0", "abc123", "", false)
		require.ErrorContains(t, err, "git tag failed")
		require.Equal(t, 0, execer.GitCallCount("/repo", "push", "origin", "v1.0"))
	})
}
