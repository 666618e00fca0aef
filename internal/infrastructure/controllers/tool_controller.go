package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/buf-breaking/internal/domain/commands"
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

// ToolController handles the "check-tool" subcommand.
type ToolController struct {
	command  commands.Tool
	reporter repositories.ReporterRepository
}

// NewToolController creates a new ToolController.
func NewToolController(command commands.Tool, reporter repositories.ReporterRepository) *ToolController {
	return &ToolController{command: command, reporter: reporter}
}

// GetBind returns the Cobra command metadata for the tool controller.
func (it *ToolController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-tool",
		Short: "Check that a supported buf binary is available",
		Long: `Locate the buf binary and check that its version is at least
` + commands.MinimumBufVersion + `, without running any analysis.`,
	}
}

// Execute runs the tool check.
func (it *ToolController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	bufPath, _ := cmd.Flags().GetString(entities.KeyBufPath)

	info, err := it.command.Execute(ctx, bufPath)
	if err != nil {
		it.reporter.Fail(err.Error())
		return err
	}

	it.reporter.Info("buf " + info.Version + " at " + info.Path + " is supported.")
	return nil
}

// AddFlags adds the tool-specific flags to the given Cobra command.
func (it *ToolController) AddFlags(cmd *cobra.Command) {
	addBufPathFlag(cmd.Flags())
}
