package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/buf-breaking/internal"
	"github.com/rios0rios0/buf-breaking/internal/infrastructure/controllers"
)

// flagAdder is implemented by controllers that own command flags.
type flagAdder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand(breakingController *controllers.BreakingController) *cobra.Command {
	bind := breakingController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceErrors: true, // the controllers report failures as workflow commands
		SilenceUsage:  true,
		RunE:          breakingController.Execute,
	}

	breakingController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}

		// Add controller-specific flags
		if fa, ok := controller.(flagAdder); ok {
			fa.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	// Diagnostics go to stderr so they never mix with workflow commands
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" || os.Getenv("RUNNER_DEBUG") == "1" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	breakingController, appContext := injectApp()
	cobraRoot := buildRootCommand(breakingController)

	// Add all subcommands
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Debugf("Error executing 'buf-breaking': %s", err)
		os.Exit(1)
	}
}
