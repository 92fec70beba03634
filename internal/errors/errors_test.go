package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoUpstreamError(t *testing.T) {
	err := &NoUpstreamError{BranchName: "feature"}

	require.Contains(t, err.Error(), "feature")
	require.ErrorIs(t, err, ErrAmbiguousRemote)
	require.NotErrorIs(t, err, ErrNoRemotes)
}

func TestGitCommandError(t *testing.T) {
	cause := errors.New("boom")
	err := NewGitCommandError("git", []string{"push", "origin"}, "out", "err", cause)

	require.Contains(t, err.Error(), "git push origin")
	require.Contains(t, err.Error(), "stderr: err")
	require.ErrorIs(t, err, cause)
}
