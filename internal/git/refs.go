package git

// The read-only structural queries go through the RefStore rather than a
// subprocess; opening the repository is cheap and each call takes a fresh
// snapshot.

// Branches lists local branches with the current one flagged.
func (s *Service) Branches(repoPath string) ([]Branch, error) {
	refs, err := s.openRefs(repoPath)
	if err != nil {
		return nil, err
	}
	return refs.LocalBranches()
}

// RemoteBranchNames lists remote-tracking branch names.
func (s *Service) RemoteBranchNames(repoPath string) ([]string, error) {
	refs, err := s.openRefs(repoPath)
	if err != nil {
		return nil, err
	}
	return refs.RemoteBranches()
}

// TagNames lists tag names.
func (s *Service) TagNames(repoPath string) ([]string, error) {
	refs, err := s.openRefs(repoPath)
	if err != nil {
		return nil, err
	}
	return refs.Tags()
}

// Remotes lists configured remotes.
func (s *Service) Remotes(repoPath string) ([]Remote, error) {
	refs, err := s.openRefs(repoPath)
	if err != nil {
		return nil, err
	}
	return refs.Remotes()
}

// currentBranchName resolves the short name of the checked-out branch,
// or "" when HEAD is detached.
func (s *Service) currentBranchName(repoPath string) (string, error) {
	refs, err := s.openRefs(repoPath)
	if err != nil {
		return "", err
	}
	head, err := refs.CurrentHead()
	if err != nil {
		return "", err
	}
	return shortBranchName(head), nil
}

func shortBranchName(fullName string) string {
	if len(fullName) > len(refHeadsPrefix) && fullName[:len(refHeadsPrefix)] == refHeadsPrefix {
		return fullName[len(refHeadsPrefix):]
	}
	return fullName
}
