package buf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

const (
	netrcFileName = ".netrc"
	netrcFileMode = 0o600
)

// NetrcCredentialRepository writes buf registry tokens to a netrc file.
type NetrcCredentialRepository struct{}

// NewCredentialRepository creates a new NetrcCredentialRepository.
func NewCredentialRepository() *NetrcCredentialRepository {
	return &NetrcCredentialRepository{}
}

var _ repositories.CredentialRepository = (*NetrcCredentialRepository)(nil)

// WriteNetrc writes (or overwrites) dir/.netrc with a single entry for machine.
func (it *NetrcCredentialRepository) WriteNetrc(dir, machine, token string) (string, error) {
	path := filepath.Join(dir, netrcFileName)
	content := fmt.Sprintf("machine %s\npassword %s\n", machine, token)
	if err := os.WriteFile(path, []byte(content), netrcFileMode); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	// WriteFile keeps the mode of a file that already exists
	if err := os.Chmod(path, netrcFileMode); err != nil {
		return "", fmt.Errorf("failed to restrict %s: %w", path, err)
	}
	return path, nil
}
