//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buf-breaking/internal/domain/commands"
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
)

// StubBreakingCommand is a stub implementation of commands.Breaking.
type StubBreakingCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	ExecutePanic     any
	LastSettings     *entities.Settings
}

var _ commands.Breaking = (*StubBreakingCommand)(nil)

func (s *StubBreakingCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.ExecutePanic != nil {
		panic(s.ExecutePanic)
	}
	return s.ExecuteErr
}
