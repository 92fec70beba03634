// Package sshkey manages the user's default SSH key pair for git
// authentication. The key lives at a fixed path under the user's SSH
// directory; generation shells out to ssh-keygen.
package sshkey

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gderrors "gitdeck.dev/gitdeck/internal/errors"
	"gitdeck.dev/gitdeck/internal/gitexec"
)

const keyFileName = "id_ed25519"

// keyComment labels generated keys in the public key file.
const keyComment = "gitdeck"

// Info describes the state of the user's SSH key pair.
type Info struct {
	PublicKey string `json:"public_key"`
	HasKey    bool   `json:"has_key"`
	// Path is the private key path, present whether or not the key exists.
	Path string `json:"path"`
}

// Manager reads and generates the default key pair.
type Manager struct {
	exec gitexec.Execer
	// sshDir overrides ~/.ssh, for tests.
	sshDir string
}

// NewManager creates a Manager backed by the given Execer.
func NewManager(execer gitexec.Execer) *Manager {
	return &Manager{exec: execer}
}

func (m *Manager) dir() (string, error) {
	if m.sshDir != "" {
		return m.sshDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("no home dir: %w", err)
	}
	return filepath.Join(home, ".ssh"), nil
}

// Info reports whether the key pair exists and returns the public key text.
func (m *Manager) Info() (Info, error) {
	dir, err := m.dir()
	if err != nil {
		return Info{}, err
	}

	keyPath := filepath.Join(dir, keyFileName)
	pubPath := keyPath + ".pub"

	if _, err := os.Stat(keyPath); err != nil {
		return Info{Path: keyPath}, nil
	}
	pub, err := os.ReadFile(pubPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Info{Path: keyPath}, nil
		}
		return Info{}, fmt.Errorf("failed to read public key: %w", err)
	}

	return Info{
		PublicKey: string(pub),
		HasKey:    true,
		Path:      keyPath,
	}, nil
}

// Generate creates a new ed25519 key pair without a passphrase. Refuses to
// overwrite an existing key.
func (m *Manager) Generate(ctx context.Context) (Info, error) {
	dir, err := m.dir()
	if err != nil {
		return Info{}, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return Info{}, fmt.Errorf("failed to create ssh dir: %w", err)
	}

	keyPath := filepath.Join(dir, keyFileName)
	if _, err := os.Stat(keyPath); err == nil {
		return Info{}, gderrors.ErrKeyExists
	}

	res := m.exec.Run(ctx, gitexec.Command{
		Name: "ssh-keygen",
		Args: []string{"-t", "ed25519", "-f", keyPath, "-N", "", "-C", keyComment},
	})
	if res.Err != nil {
		return Info{}, fmt.Errorf("failed to execute ssh-keygen: %w", res.Err)
	}
	if res.ExitCode != 0 {
		return Info{}, fmt.Errorf("ssh-keygen failed: %s", res.Stderr)
	}

	return m.Info()
}
