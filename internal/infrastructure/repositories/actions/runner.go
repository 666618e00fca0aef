package actions

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"github.com/sethvargo/go-githubactions"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
)

const (
	runnerTempEnvKey = "RUNNER_TEMP"
	repositoryEnvKey = "GITHUB_REPOSITORY"
	eventPathEnvKey  = "GITHUB_EVENT_PATH"
)

// NewRunner reads the job context from the runner environment. The pull
// request is only resolved when the triggering event carries one, and an
// event payload that cannot be read leaves it unset.
func NewRunner(action *githubactions.Action) entities.Runner {
	runner := entities.Runner{
		TempDir: action.Getenv(runnerTempEnvKey),
	}

	owner, repository, found := strings.Cut(action.Getenv(repositoryEnvKey), "/")
	if found {
		runner.Owner = owner
		runner.Repository = repository
	}

	eventPath := action.Getenv(eventPathEnvKey)
	if eventPath == "" {
		return runner
	}

	pullRequest, err := readPullRequest(eventPath)
	if err != nil {
		logger.Warnf("Failed to resolve the pull request: %v", err)
		return runner
	}
	if pullRequest != nil {
		pullRequest.Owner = runner.Owner
		pullRequest.Repository = runner.Repository
		runner.PullRequest = pullRequest
	}
	return runner
}

// readPullRequest decodes the event payload. Events other than pull_request
// decode without a number and yield nil.
func readPullRequest(eventPath string) (*entities.PullRequestTarget, error) {
	data, err := os.ReadFile(eventPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload %q: %w", eventPath, err)
	}

	var event gh.PullRequestEvent
	if unmarshalErr := json.Unmarshal(data, &event); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", unmarshalErr)
	}

	if event.PullRequest == nil || event.PullRequest.GetNumber() == 0 {
		return nil, nil
	}

	return &entities.PullRequestTarget{
		Number:  event.PullRequest.GetNumber(),
		HeadSHA: event.PullRequest.GetHead().GetSHA(),
	}, nil
}
