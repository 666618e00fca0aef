//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sethvargo/go-githubactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buf-breaking/internal/domain/commands"
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	infraRepos "github.com/rios0rios0/buf-breaking/internal/infrastructure/repositories"
	actionsRepo "github.com/rios0rios0/buf-breaking/internal/infrastructure/repositories/actions"
	bufRepo "github.com/rios0rios0/buf-breaking/internal/infrastructure/repositories/buf"
)

// fakeBufScript answers "--version" and reports one FIELD_REMOVED finding,
// on line 10 against main and on line 5 against v1.
const fakeBufScript = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "1.28.1"
  exit 0
fi
case "$4" in
  main)
    echo '{"path":"a.proto","start_line":10,"start_column":3,"type":"FIELD_REMOVED","message":"field removed"}'
    exit 100
    ;;
  v1)
    echo '{"path":"a.proto","start_line":5,"start_column":3,"type":"FIELD_REMOVED","message":"field removed"}'
    exit 100
    ;;
  clean)
    exit 0
    ;;
esac
echo "Failure: unknown baseline $4" >&2
exit 1
`

const outputDelimiter = "_GitHubActionsFileCommandDelimeter_"

type endToEndRun struct {
	command    *commands.BreakingCommand
	stdout     *bytes.Buffer
	outputFile string
	settings   *entities.Settings
}

func newEndToEndRun(t *testing.T, withOutputFile bool) *endToEndRun {
	t.Helper()

	dir := t.TempDir()
	binary := filepath.Join(dir, "buf")
	require.NoError(t, os.WriteFile(binary, []byte(fakeBufScript), 0o755))

	env := map[string]string{}
	outputFile := ""
	if withOutputFile {
		outputFile = filepath.Join(dir, "output")
		env["GITHUB_OUTPUT"] = outputFile
	}

	var stdout bytes.Buffer
	action := githubactions.New(
		githubactions.WithWriter(&stdout),
		githubactions.WithGetenv(func(key string) string { return env[key] }),
	)

	analyzer := bufRepo.NewAnalyzerRepository()
	command := commands.NewBreakingCommand(
		commands.NewToolCommand(analyzer),
		analyzer,
		bufRepo.NewCredentialRepository(),
		actionsRepo.NewReporterRepository(action),
		infraRepos.NewCommentRegistry(),
	)

	return &endToEndRun{
		command:    command,
		stdout:     &stdout,
		outputFile: outputFile,
		settings: &entities.Settings{
			Input:     "pr-branch",
			Against:   "main",
			BufRemote: entities.DefaultBufRemote,
			BufPath:   binary,
			Runner:    entities.Runner{TempDir: dir},
		},
	}
}

func (r *endToEndRun) results(t *testing.T) string {
	t.Helper()

	content, err := os.ReadFile(r.outputFile)
	require.NoError(t, err)
	return string(content)
}

func resultsOutput(value string) string {
	return "results<<" + outputDelimiter + "\n" + value + "\n" + outputDelimiter + "\n"
}

// These tests execute a freshly written script, so they do not run in parallel.
func TestBreakingCommandEndToEnd(t *testing.T) {
	t.Run("should fail with one located annotation against main", func(t *testing.T) {
		// given
		run := newEndToEndRun(t, true)

		// when
		err := run.command.Execute(context.Background(), run.settings)

		// then
		require.EqualError(t, err, "found 1 breaking changes.")
		require.ErrorIs(t, err, entities.ErrBreakingChanges)
		assert.Equal(t,
			"::error col=3,file=a.proto,line=10,title=FIELD_REMOVED::field removed\n",
			run.stdout.String(),
		)
		assert.Equal(t, resultsOutput(
			`[{"path":"a.proto","start_line":10,"start_column":3,"type":"FIELD_REMOVED","message":"field removed"}]`,
		), run.results(t))
	})

	t.Run("should succeed when the finding already exists since v1", func(t *testing.T) {
		// given
		run := newEndToEndRun(t, true)
		run.settings.Since = "v1"

		// when
		err := run.command.Execute(context.Background(), run.settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, "No new breaking changes were found.\n", run.stdout.String())
		assert.Equal(t, resultsOutput("[]"), run.results(t))
	})

	t.Run("should succeed with an empty results output when nothing changed", func(t *testing.T) {
		// given
		run := newEndToEndRun(t, true)
		run.settings.Against = "clean"

		// when
		err := run.command.Execute(context.Background(), run.settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, "No breaking changes were found.\n", run.stdout.String())
		assert.Equal(t, resultsOutput("[]"), run.results(t))
	})

	t.Run("should report the findings outside of a runner", func(t *testing.T) {
		// given
		run := newEndToEndRun(t, false)

		// when
		err := run.command.Execute(context.Background(), run.settings)

		// then
		require.EqualError(t, err, "found 1 breaking changes.")
		assert.Contains(t, run.stdout.String(), "file=a.proto,line=10")
	})

	t.Run("should carry the buf failure output", func(t *testing.T) {
		// given
		run := newEndToEndRun(t, true)
		run.settings.Against = "missing"

		// when
		err := run.command.Execute(context.Background(), run.settings)

		// then
		require.ErrorIs(t, err, entities.ErrAnalyzerExecution)
		assert.Contains(t, err.Error(), "Failure: unknown baseline missing")
		assert.Empty(t, run.stdout.String())
	})
}
