package controllers

import (
	"context"
	"strings"

	"github.com/sethvargo/go-githubactions"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rios0rios0/buf-breaking/internal/domain/commands"
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
	actionsRepo "github.com/rios0rios0/buf-breaking/internal/infrastructure/repositories/actions"
)

// actionInputPrefix is the prefix of the environment variables GitHub Actions
// sets for each action input.
const actionInputPrefix = "INPUT"

// BreakingController handles the root command: one breaking-change run.
type BreakingController struct {
	command  commands.Breaking
	reporter repositories.ReporterRepository
	action   *githubactions.Action
}

// NewBreakingController creates a new BreakingController.
func NewBreakingController(
	command commands.Breaking,
	reporter repositories.ReporterRepository,
	action *githubactions.Action,
) *BreakingController {
	return &BreakingController{command: command, reporter: reporter, action: action}
}

// GetBind returns the Cobra command metadata for the breaking controller.
func (it *BreakingController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "buf-breaking",
		Short: "Report breaking changes between two Protobuf schema versions",
		Long: `Run "buf breaking" on the input against a baseline and report every
backward-incompatible change as a GitHub Actions annotation.

With --since, buf also runs against an older baseline and only the changes
that are not present against it are reported.

Every flag can also be set through the matching action input
(e.g. INPUT_BUF_TOKEN for --buf-token).`,
	}
}

// Execute loads the settings and runs the breaking-change check. The returned
// error has already been reported as a failed run.
func (it *BreakingController) Execute(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Errorf("Unexpected failure: %v", recovered)
			err = entities.NewFailure(entities.ErrInternal, "Internal error")
		}
		if err != nil {
			it.reporter.Fail(err.Error())
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := it.loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings)
}

// AddFlags adds the breaking-specific flags to the given Cobra command.
func (it *BreakingController) AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String(entities.KeyInput, "", "The input to check (path, module or git reference)")
	flags.String(entities.KeyAgainst, "", "The baseline to check the input against")
	flags.String(entities.KeySince, "",
		"An older baseline; only changes not present against it are reported")
	flags.String(entities.KeyBufToken, "", "The buf registry token")
	flags.String(entities.KeyBufRemote, entities.DefaultBufRemote,
		"The buf registry the token is written for")
	flags.String(entities.KeyHTTPSUsername, "", "The username for HTTPS inputs")
	flags.String(entities.KeyHTTPSPassword, "", "The password for HTTPS inputs")
	flags.String(entities.KeyGitHubToken, "", "The GitHub token used to post comments")
	flags.Bool(entities.KeyComment, false, "Post the breaking changes as pull request comments")
	addBufPathFlag(flags)
}

func (it *BreakingController) loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	v, err := newInputViper(cmd.Flags())
	if err != nil {
		return nil, err
	}

	return entities.NewSettings(v, actionsRepo.NewRunner(it.action)), nil
}

// newInputViper binds the command flags and the action input variables. A
// flag set on the command line wins over the input.
func newInputViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(actionInputPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

func addBufPathFlag(flags *pflag.FlagSet) {
	flags.String(entities.KeyBufPath, "", "The buf binary to use (default: buf on PATH)")
}
