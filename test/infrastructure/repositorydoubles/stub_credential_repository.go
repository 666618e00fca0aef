//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

// StubCredentialRepository implements repositories.CredentialRepository
// without touching the filesystem.
type StubCredentialRepository struct {
	WriteErr error

	// spy: inputs received
	Dirs     []string
	Machines []string
	Tokens   []string
}

var _ repositories.CredentialRepository = (*StubCredentialRepository)(nil)

func (s *StubCredentialRepository) WriteNetrc(dir, machine, token string) (string, error) {
	s.Dirs = append(s.Dirs, dir)
	s.Machines = append(s.Machines, machine)
	s.Tokens = append(s.Tokens, token)
	if s.WriteErr != nil {
		return "", s.WriteErr
	}
	return filepath.Join(dir, ".netrc"), nil
}
