package controllers

import (
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewBreakingController); err != nil {
		return err
	}
	if err := container.Provide(NewToolController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the
// AppInternal. The breaking controller is the root command and is not listed.
func NewControllers(
	toolController *ToolController,
) *[]entities.Controller {
	return &[]entities.Controller{
		toolController,
	}
}
