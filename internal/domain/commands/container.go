package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewToolCommand); err != nil {
		return err
	}
	if err := container.Provide(NewBreakingCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ToolCommand) Tool {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BreakingCommand) Breaking {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
