package git

import (
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gderrors "gitdeck.dev/gitdeck/internal/errors"
)

const (
	refHeadsPrefix   = "refs/heads/"
	refRemotesPrefix = "refs/remotes/"
	refTagsPrefix    = "refs/tags/"
)

// RefStore answers read-only structural queries about a repository without
// spawning a process. It can be backed by go-git or by a test fixture.
type RefStore interface {
	// LocalBranches lists local branches; exactly one is current unless
	// HEAD is detached.
	LocalBranches() ([]Branch, error)
	// RemoteBranches lists remote-tracking branch names as "remote/branch",
	// excluding each remote's HEAD pointer.
	RemoteBranches() ([]string, error)
	// Tags lists tag names with the ref namespace stripped.
	Tags() ([]string, error)
	// CurrentHead returns the full ref name the symbolic HEAD points at,
	// or "" when HEAD is detached.
	CurrentHead() (string, error)
	// Remotes lists configured remotes in configuration order.
	Remotes() ([]Remote, error)
}

// Repository is the go-git backed RefStore.
type Repository struct {
	repo *gogit.Repository
	path string
}

// openRepository opens the repository containing path.
func openRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", gderrors.ErrNotARepository, absPath)
	}

	return &Repository{repo: repo, path: absPath}, nil
}

// OpenRepository opens the repository containing path.
func OpenRepository(path string) (RefStore, error) {
	return openRepository(path)
}

// CurrentHead returns the full ref name of the symbolic HEAD target.
func (r *Repository) CurrentHead() (string, error) {
	head, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		// Detached HEAD
		return "", nil
	}
	return head.Target().String(), nil
}

// LocalBranches lists local branches, marking the one HEAD points at.
func (r *Repository) LocalBranches() ([]Branch, error) {
	headName, err := r.CurrentHead()
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	branches := []Branch{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		fullName := ref.Name().String()
		if !strings.HasPrefix(fullName, refHeadsPrefix) {
			return nil
		}
		branches = append(branches, Branch{
			Name:      strings.TrimPrefix(fullName, refHeadsPrefix),
			IsCurrent: fullName == headName,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	return branches, nil
}

// RemoteBranches lists remote-tracking branches, excluding HEAD pointers.
func (r *Repository) RemoteBranches() ([]string, error) {
	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	branches := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		fullName := ref.Name().String()
		if !strings.HasPrefix(fullName, refRemotesPrefix) {
			return nil
		}
		name := strings.TrimPrefix(fullName, refRemotesPrefix)
		if strings.HasSuffix(name, "/HEAD") {
			return nil
		}
		branches = append(branches, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate remote branches: %w", err)
	}
	return branches, nil
}

// Tags lists tag names.
func (r *Repository) Tags() ([]string, error) {
	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	tags := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		fullName := ref.Name().String()
		if !strings.HasPrefix(fullName, refTagsPrefix) {
			return nil
		}
		tags = append(tags, strings.TrimPrefix(fullName, refTagsPrefix))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}

// Remotes enumerates remotes from the repository configuration, keeping the
// order of the config file. Subsections without a name are skipped.
func (r *Repository) Remotes() ([]Remote, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	remotes := []Remote{}
	for _, sub := range cfg.Raw.Section("remote").Subsections {
		if sub.Name == "" {
			continue
		}
		remotes = append(remotes, Remote{
			Name: sub.Name,
			URL:  sub.Option("url"),
		})
	}
	return remotes, nil
}
