package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// Init creates a new non-bare repository at path.
func (s *Service) Init(path string) error {
	if _, err := gogit.PlainInit(path, false); err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}
	return nil
}

// IsRepo reports whether path holds a git repository.
func (s *Service) IsRepo(path string) (bool, error) {
	_, err := gogit.PlainOpen(path)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
