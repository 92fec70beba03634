package git

import (
	"gitdeck.dev/gitdeck/internal/gitexec"
	"gitdeck.dev/gitdeck/testhelpers"
)

// fakeRefStore is a RefStore backed by fixed data.
type fakeRefStore struct {
	branches       []Branch
	remoteBranches []string
	tags           []string
	head           string
	remotes        []Remote
	err            error
}

func (f *fakeRefStore) LocalBranches() ([]Branch, error) { return f.branches, f.err }
func (f *fakeRefStore) RemoteBranches() ([]string, error) {
	return f.remoteBranches, f.err
}
func (f *fakeRefStore) Tags() ([]string, error)    { return f.tags, f.err }
func (f *fakeRefStore) CurrentHead() (string, error) { return f.head, f.err }
func (f *fakeRefStore) Remotes() ([]Remote, error) { return f.remotes, f.err }

// newFakeService builds a Service over a FakeExecer and a fixed RefStore.
func newFakeService(refs *fakeRefStore) (*Service, *testhelpers.FakeExecer) {
	execer := testhelpers.NewFakeExecer()
	svc := NewService(execer)
	svc.openRefs = func(string) (RefStore, error) {
		return refs, nil
	}
	return svc, execer
}

func okResult(stdout string) gitexec.Result {
	return gitexec.Result{Stdout: stdout}
}

func failResult(stderr string) gitexec.Result {
	return gitexec.Result{Stderr: stderr, ExitCode: 1}
}
