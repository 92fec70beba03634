// Package errors provides sentinel errors and custom error types for the gitdeck backend.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that a path does not contain a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrDeleteCurrentBranch indicates an attempt to delete the checked-out branch
	ErrDeleteCurrentBranch = errors.New("cannot delete the currently active branch")

	// ErrNoRemotes indicates that the repository has no remotes configured
	ErrNoRemotes = errors.New("no remotes configured")

	// ErrAmbiguousRemote indicates that more than one remote is configured and
	// the operation cannot pick one automatically
	ErrAmbiguousRemote = errors.New("ambiguous remote")

	// ErrKeyExists indicates that an SSH key already exists at the expected path
	ErrKeyExists = errors.New("SSH key exists")

	// ErrAvatarNotFound indicates that every avatar candidate failed
	ErrAvatarNotFound = errors.New("failed to fetch avatar")
)

// NoUpstreamError represents a push rejected because the branch has no upstream
// and more than one remote is configured, so no retry target can be chosen.
type NoUpstreamError struct {
	BranchName string
}

func (e *NoUpstreamError) Error() string {
	return fmt.Sprintf("Branch '%s' has no upstream. Please set it manually or choose a remote.", e.BranchName)
}

// Is returns true if the target error is ErrAmbiguousRemote
func (e *NoUpstreamError) Is(target error) bool {
	return target == ErrAmbiguousRemote
}

// GitCommandError represents a git command that ran but exited non-zero.
// It is distinct from a spawn failure, where the binary never ran at all.
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %s", strings.Join(e.Args, " "))
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
