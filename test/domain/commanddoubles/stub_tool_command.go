//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buf-breaking/internal/domain/commands"
)

// StubToolCommand is a stub implementation of commands.Tool.
type StubToolCommand struct {
	ExecuteCallCount int
	ToolInfo         *commands.ToolInfo
	ExecuteErr       error
	LastBufPath      string
}

var _ commands.Tool = (*StubToolCommand)(nil)

func (s *StubToolCommand) Execute(_ context.Context, bufPath string) (*commands.ToolInfo, error) {
	s.ExecuteCallCount++
	s.LastBufPath = bufPath
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return s.ToolInfo, nil
}
