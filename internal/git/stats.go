package git

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RepoStats assembles an aggregate snapshot of the repository through go-git.
// Individual probes are best effort; a failing probe leaves its field zeroed
// rather than failing the whole snapshot.
func (s *Service) RepoStats(path string) (*RepoStats, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, err
	}

	stats := &RepoStats{
		RepoName: filepath.Base(path),
	}

	dotGitPath := filepath.Join(path, ".git")
	if cfg, err := repo.Config(); err == nil && cfg.Core.IsBare {
		dotGitPath = path
	}
	size, _ := dirSize(dotGitPath)
	stats.SizeMB = float64(size) / 1024 / 1024

	if remotes, err := repo.Remotes(); err == nil && len(remotes) > 0 {
		stats.RemoteURL = remotes[0].Config().URLs[0]
	}

	if iter, err := repo.Log(&gogit.LogOptions{}); err == nil {
		var count int
		_ = iter.ForEach(func(c *object.Commit) error {
			if count == 0 {
				stats.LastCommit = c.Author.When
			}
			stats.FirstCommit = c.Author.When
			count++
			return nil
		})
		stats.CommitCount = count
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			stats.IsClean = status.IsClean()
			for file, st := range status {
				if st.Worktree != gogit.Unmodified || st.Staging != gogit.Unmodified {
					stats.ModifiedFiles = append(stats.ModifiedFiles, file)
				}
			}
		}
	}

	if iter, err := repo.Branches(); err == nil {
		_ = iter.ForEach(func(ref *plumbing.Reference) error {
			stats.Branches = append(stats.Branches, ref.Name().Short())
			return nil
		})
	}

	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		stats.CurrentBranch = head.Name().Short()
	}

	if remotes, err := repo.Remotes(); err == nil {
		for _, remote := range remotes {
			remoteName := remote.Config().Name
			rb := RemoteBranches{Name: remoteName}
			if refs, err := repo.References(); err == nil {
				_ = refs.ForEach(func(ref *plumbing.Reference) error {
					if ref.Name().IsRemote() && strings.HasPrefix(ref.Name().Short(), remoteName+"/") {
						rb.Branches = append(rb.Branches, ref.Name().Short())
					}
					return nil
				})
			}
			stats.Remotes = append(stats.Remotes, rb)
		}
	}

	if iter, err := repo.Tags(); err == nil {
		_ = iter.ForEach(func(ref *plumbing.Reference) error {
			stats.Tags = append(stats.Tags, ref.Name().Short())
			return nil
		})
	}

	// refs/stash points at the latest stash only; walking the full stash
	// stack through go-git is not worth it here.
	if stashRef, err := repo.Storer.Reference(plumbing.ReferenceName("refs/stash")); err == nil {
		if commit, err := repo.CommitObject(stashRef.Hash()); err == nil {
			stats.Stashes = append(stats.Stashes, strings.TrimSpace(commit.Message))
		}
	}

	return stats, nil
}

func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat entry: %w", err)
		}
		size += info.Size()
		return nil
	})
	return size, err
}
