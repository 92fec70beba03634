package git

import (
	"context"
	"fmt"
	"strings"

	gderrors "gitdeck.dev/gitdeck/internal/errors"
)

// CreateBranch creates a branch at startPoint, optionally checking it out.
func (s *Service) CreateBranch(ctx context.Context, repoPath, name, startPoint string, checkout bool) error {
	if checkout {
		res, err := s.run(ctx, repoPath, "checkout", "-b", name, startPoint)
		if err != nil {
			return err
		}
		if !res.Ok() {
			return fmt.Errorf("git checkout -b failed: %s", res.Stderr)
		}
		return nil
	}

	res, err := s.run(ctx, repoPath, "branch", name, startPoint)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git branch failed: %s", res.Stderr)
	}
	return nil
}

// SwitchBranch checks out an existing branch.
func (s *Service) SwitchBranch(ctx context.Context, repoPath, branchName string) error {
	res, err := s.run(ctx, repoPath, "checkout", branchName)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git checkout failed: %s", res.Stderr)
	}
	return nil
}

// CheckoutRemoteBranch checks out a remote-tracking branch as a local branch.
// Without newBranchName the local name is the remote branch name with its
// remote stripped; an existing local branch of that name is simply checked
// out, but an explicit new name colliding with an existing branch is an error.
func (s *Service) CheckoutRemoteBranch(ctx context.Context, repoPath, remoteBranch, newBranchName string) error {
	localName := remoteBranch
	if idx := strings.Index(remoteBranch, "/"); idx >= 0 {
		localName = remoteBranch[idx+1:]
	}
	if newBranchName != "" {
		localName = newBranchName
	}

	refs, err := s.openRefs(repoPath)
	if err != nil {
		return err
	}
	locals, err := refs.LocalBranches()
	if err != nil {
		return err
	}
	exists := false
	for _, b := range locals {
		if b.Name == localName {
			exists = true
			break
		}
	}

	var args []string
	if exists {
		if newBranchName != "" {
			return fmt.Errorf("Branch '%s' exists.", localName)
		}
		args = []string{"checkout", localName}
	} else {
		args = []string{"checkout", "-b", localName, "--track", remoteBranch}
	}

	res, err := s.run(ctx, repoPath, args...)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git checkout failed: %s", res.Stderr)
	}
	return nil
}

// DeleteBranch force-deletes a local branch, refusing to touch the branch
// HEAD points at. With deleteRemote the same name is deleted from every
// configured remote, best effort.
func (s *Service) DeleteBranch(ctx context.Context, repoPath, branchName string, deleteRemote bool) error {
	current, err := s.currentBranchName(repoPath)
	if err != nil {
		return err
	}
	if current == branchName {
		return gderrors.ErrDeleteCurrentBranch
	}

	res, err := s.run(ctx, repoPath, "branch", "-D", branchName)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("failed to delete local branch '%s': %s", branchName, res.Stderr)
	}

	if deleteRemote {
		remotes, err := s.run(ctx, repoPath, "remote")
		if err == nil && remotes.Ok() {
			for _, remote := range strings.Split(remotes.Stdout, "\n") {
				remote = strings.TrimSpace(remote)
				if remote == "" {
					continue
				}
				// Best effort; a missing remote branch is not an error.
				_, _ = s.run(ctx, repoPath, "push", remote, "--delete", branchName)
			}
		}
	}

	return nil
}
