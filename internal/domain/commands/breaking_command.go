package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/buf-breaking/internal/infrastructure/repositories"
)

const (
	runnerTempEnvKey = "RUNNER_TEMP"
	commentProvider  = "github"

	netrcEnvKey         = "NETRC"
	bufTokenEnvKey      = "BUF_TOKEN"
	httpsUsernameEnvKey = "BUF_INPUT_HTTPS_USERNAME"
	httpsPasswordEnvKey = "BUF_INPUT_HTTPS_PASSWORD"

	noBreakingChangesMessage    = "No breaking changes were found."
	noNewBreakingChangesMessage = "No new breaking changes were found."
)

// Breaking is the interface for the breaking-change check command.
type Breaking interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// BreakingCommand runs buf breaking against the configured baseline, drops
// the findings already present against the "since" baseline when one is set,
// and reports what remains. A nil error means no breaking change was found.
type BreakingCommand struct {
	tool            Tool
	analyzer        repositories.AnalyzerRepository
	credentials     repositories.CredentialRepository
	reporter        repositories.ReporterRepository
	commentRegistry *infraRepos.CommentRegistry
}

// NewBreakingCommand creates a new BreakingCommand.
func NewBreakingCommand(
	tool Tool,
	analyzer repositories.AnalyzerRepository,
	credentials repositories.CredentialRepository,
	reporter repositories.ReporterRepository,
	commentRegistry *infraRepos.CommentRegistry,
) *BreakingCommand {
	return &BreakingCommand{
		tool:            tool,
		analyzer:        analyzer,
		credentials:     credentials,
		reporter:        reporter,
		commentRegistry: commentRegistry,
	}
}

// Execute is the entry point of a breaking-change run.
func (it *BreakingCommand) Execute(ctx context.Context, settings *entities.Settings) error {
	if err := validate(settings); err != nil {
		return err
	}

	tool, err := it.tool.Execute(ctx, settings.BufPath)
	if err != nil {
		return err
	}

	env, err := it.invocationEnv(settings)
	if err != nil {
		return err
	}

	result, err := it.analyzer.Breaking(ctx, tool.Path, entities.BreakingInput{
		Input:   settings.Input,
		Against: settings.Against,
		Env:     env,
	})
	if err != nil {
		return err
	}
	logger.Debugf("buf reported %d annotations against %q", len(result.Annotations), settings.Against)

	annotations := result.Annotations
	if settings.Incremental() {
		baseline, sinceErr := it.analyzer.Breaking(ctx, tool.Path, entities.BreakingInput{
			Input:   settings.Input,
			Against: settings.Since,
			Env:     env,
		})
		if sinceErr != nil {
			return sinceErr
		}
		logger.Debugf("buf reported %d annotations against %q", len(baseline.Annotations), settings.Since)

		annotations = entities.FilterNew(result.Annotations, baseline.Annotations)
	}

	return it.report(ctx, settings, result, annotations)
}

// report emits the annotations and returns the final status.
func (it *BreakingCommand) report(
	ctx context.Context,
	settings *entities.Settings,
	result *entities.AnalysisResult,
	annotations []entities.Annotation,
) error {
	it.reporter.Annotate(annotations)
	if err := it.reporter.SetResults(annotations); err != nil {
		return err
	}

	if len(annotations) == 0 {
		if settings.Incremental() {
			it.reporter.Info(noNewBreakingChangesMessage)
		} else {
			it.reporter.Info(noBreakingChangesMessage)
		}
		return nil
	}

	if settings.Comment {
		it.postComments(ctx, settings, annotations)
	}

	// Diagnostics of the primary run may mention findings suppressed by the
	// "since" baseline, so they are only echoed for full reports.
	if !settings.Incremental() && result.Diagnostics != "" {
		it.reporter.Info(result.Diagnostics)
	}

	return entities.NewBreakingChangesError(len(annotations), settings.Incremental())
}

// postComments writes the annotations as pull request comments. It never
// fails the run.
func (it *BreakingCommand) postComments(
	ctx context.Context,
	settings *entities.Settings,
	annotations []entities.Annotation,
) {
	target := settings.Runner.PullRequest
	if target == nil {
		logger.Info("Not running for a pull request, skipping in-line comments.")
		return
	}

	BestEffort("write comments in-line", func() error {
		provider, err := it.commentRegistry.Get(commentProvider, settings.GitHubToken)
		if err != nil {
			return err
		}
		return provider.PostComments(ctx, *target, annotations)
	})
}

// invocationEnv returns the credential variables passed to buf. They are
// added to each invocation's environment, never to the process environment.
func (it *BreakingCommand) invocationEnv(settings *entities.Settings) ([]string, error) {
	var env []string

	if settings.BufToken != "" {
		netrcPath, err := it.credentials.WriteNetrc(
			settings.Runner.TempDir, settings.BufRemote, settings.BufToken,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to store the buf token: %w", err)
		}
		env = append(env,
			netrcEnvKey+"="+netrcPath,
			bufTokenEnvKey+"="+settings.BufToken,
		)
	}

	if settings.HTTPSUsername != "" {
		env = append(env,
			httpsUsernameEnvKey+"="+settings.HTTPSUsername,
			httpsPasswordEnvKey+"="+settings.HTTPSPassword,
		)
	}

	return env, nil
}

// validate checks the settings before anything is run.
func validate(settings *entities.Settings) error {
	if settings.Input == "" {
		return entities.NewConfigurationError("an input was not provided")
	}
	if settings.Against == "" {
		return entities.NewConfigurationError("an against was not provided")
	}
	if settings.HTTPSUsername != "" && settings.HTTPSPassword == "" {
		return entities.NewConfigurationError(
			"a buf_input_https_password was not provided for buf_input_https_username",
		)
	}
	if settings.HTTPSPassword != "" && settings.HTTPSUsername == "" {
		return entities.NewConfigurationError(
			"a buf_input_https_username was not provided for buf_input_https_password",
		)
	}
	if settings.BufToken != "" && settings.Runner.TempDir == "" {
		return entities.NewConfigurationError("expected %s to be defined", runnerTempEnvKey)
	}

	if !settings.Comment {
		return nil
	}
	if settings.GitHubToken == "" {
		return entities.NewConfigurationError("a Github authentication token was not provided")
	}
	if settings.Runner.Owner == "" {
		return entities.NewConfigurationError("an owner was not provided")
	}
	if settings.Runner.Repository == "" {
		return entities.NewConfigurationError("a repository was not provided")
	}
	return nil
}
