package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRefQueries(t *testing.T) {
	refs := &fakeRefStore{
		branches:       []Branch{{Name: "main", IsCurrent: true}, {Name: "feature"}},
		remoteBranches: []string{"origin/main"},
		tags:           []string{"v1.0"},
		head:           "refs/heads/main",
		remotes:        []Remote{{Name: "origin", URL: "git@example.com:a/b.git"}},
	}
	svc, _ := newFakeService(refs)

	branches, err := svc.Branches("/repo")
	require.NoError(t, err)
	require.Equal(t, refs.branches, branches)

	remoteBranches, err := svc.RemoteBranchNames("/repo")
	require.NoError(t, err)
	require.Equal(t, refs.remoteBranches, remoteBranches)

	tags, err := svc.TagNames("/repo")
	require.NoError(t, err)
	require.Equal(t, refs.tags, tags)

	remotes, err := svc.Remotes("/repo")
	require.NoError(t, err)
	require.Equal(t, refs.remotes, remotes)
}

func TestShortBranchName(t *testing.T) {
	require.Equal(t, "main", shortBranchName("refs/heads/main"))
	require.Equal(t, "feat/nested", shortBranchName("refs/heads/feat/nested"))
	require.Equal(t, "", shortBranchName(""))
	require.Equal(t, "abc123", shortBranchName("abc123"))
}
