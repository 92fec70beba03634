package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gderrors "gitdeck.dev/gitdeck/internal/errors"
)

func TestCreateBranch(t *testing.T) {
	t.Run("with checkout", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{})
		require.NoError(t, svc.CreateBranch(context.Background(), "/repo", "feature", "main", true))
		require.Equal(t, 1, execer.GitCallCount("/repo", "checkout", "-b", "feature", "main"))
	})

	t.Run("without checkout", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{})
		require.NoError(t, svc.CreateBranch(context.Background(), "/repo", "feature", "main", false))
		require.Equal(t, 1, execer.GitCallCount("/repo", "branch", "feature", "main"))
	})
}

func TestSwitchBranch(t *testing.T) {
	svc, execer := newFakeService(&fakeRefStore{})
	execer.StubGit("/repo", failResult("error: pathspec 'gone' did not match"), "checkout", "gone")

	err := svc.SwitchBranch(context.Background(), "/repo", "gone")
	require.ErrorContains(t, err, "git checkout failed")
}

func TestCheckoutRemoteBranch(t *testing.T) {
	t.Run("creates a tracking branch named after the remote branch", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{
			branches: []Branch{{Name: "main", IsCurrent: true}},
		})

		err := svc.CheckoutRemoteBranch(context.Background(), "/repo", "origin/feature", "")
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "checkout", "-b", "feature", "--track", "origin/feature"))
	})

	t.Run("existing local branch is simply checked out", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{
			branches: []Branch{{Name: "main"}, {Name: "feature"}},
		})

		err := svc.CheckoutRemoteBranch(context.Background(), "/repo", "origin/feature", "")
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "checkout", "feature"))
	})

	t.Run("explicit name colliding with a local branch is an error", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{
			branches: []Branch{{Name: "main"}},
		})

		err := svc.CheckoutRemoteBranch(context.Background(), "/repo", "origin/feature", "main")
		require.ErrorContains(t, err, "Branch 'main' exists.")
		require.Empty(t, execer.Calls())
	})

	t.Run("explicit fresh name tracks the remote branch", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{
			branches: []Branch{{Name: "main"}},
		})

		err := svc.CheckoutRemoteBranch(context.Background(), "/repo", "origin/feature", "local-feature")
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "checkout", "-b", "local-feature", "--track", "origin/feature"))
	})
}

func TestDeleteBranch(t *testing.T) {
	t.Run("refuses the current branch before touching anything", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{head: "refs/heads/main"})

		err := svc.DeleteBranch(context.Background(), "/repo", "main", true)
		require.ErrorIs(t, err, gderrors.ErrDeleteCurrentBranch)
		require.Empty(t, execer.Calls())
	})

	t.Run("deletes the local branch only", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{head: "refs/heads/main"})

		err := svc.DeleteBranch(context.Background(), "/repo", "feature", false)
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "branch", "-D", "feature"))
		require.Equal(t, 0, execer.GitCallCount("/repo", "remote"))
	})

	t.Run("deletes from every remote best effort", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{head: "refs/heads/main"})
		execer.StubGit("/repo", okResult("origin\nfork\n"), "remote")
		execer.StubGit("/repo", failResult("remote ref does not exist"), "push", "origin", "--delete", "feature")

		err := svc.DeleteBranch(context.Background(), "/repo", "feature", true)
		require.NoError(t, err)
		require.Equal(t, 1, execer.GitCallCount("/repo", "push", "origin", "--delete", "feature"))
		require.Equal(t, 1, execer.GitCallCount("/repo", "push", "fork", "--delete", "feature"))
	})

	t.Run("local delete failure surfaces", func(t *testing.T) {
		svc, execer := newFakeService(&fakeRefStore{head: "refs/heads/main"})
		execer.StubGit("/repo", failResult("error: branch 'feature' not found"), "branch", "-D", "feature")

		err := svc.DeleteBranch(context.Background(), "/repo", "feature", false)
		require.ErrorContains(t, err, "failed to delete local branch 'feature'")
	})
}
