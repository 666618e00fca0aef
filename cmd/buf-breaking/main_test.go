//go:build unit

package main

import (
	"bytes"
	"testing"

	"github.com/sethvargo/go-githubactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buf-breaking/internal"
	"github.com/rios0rios0/buf-breaking/internal/domain/commands"
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/infrastructure/controllers"
	"github.com/rios0rios0/buf-breaking/test/domain/commanddoubles"
	"github.com/rios0rios0/buf-breaking/test/infrastructure/repositorydoubles"
)

func newTestApp(
	tool *commanddoubles.StubToolCommand,
	reporter *repositorydoubles.SpyReporterRepository,
) *internal.AppInternal {
	toolController := controllers.NewToolController(tool, reporter)
	return internal.NewAppInternal(&[]entities.Controller{toolController})
}

func TestBuildRootCommand(t *testing.T) {
	t.Run("should run the breaking controller with the parsed flags", func(t *testing.T) {
		// given
		breaking := &commanddoubles.StubBreakingCommand{}
		reporter := &repositorydoubles.SpyReporterRepository{}
		var out bytes.Buffer
		action := githubactions.New(
			githubactions.WithWriter(&out),
			githubactions.WithGetenv(func(string) string { return "" }),
		)
		root := buildRootCommand(controllers.NewBreakingController(breaking, reporter, action))
		root.SetArgs([]string{"--input", "pr-branch", "--against", "main"})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, breaking.ExecuteCallCount)
		assert.Equal(t, "pr-branch", breaking.LastSettings.Input)
		assert.Equal(t, "main", breaking.LastSettings.Against)
	})

	t.Run("should reject positional arguments", func(t *testing.T) {
		// given
		breaking := &commanddoubles.StubBreakingCommand{}
		reporter := &repositorydoubles.SpyReporterRepository{}
		root := buildRootCommand(controllers.NewBreakingController(breaking, reporter, githubactions.New()))
		root.SetArgs([]string{"unexpected"})

		// when
		err := root.Execute()

		// then
		require.Error(t, err)
		assert.Equal(t, 0, breaking.ExecuteCallCount)
	})

	t.Run("should dispatch to the check-tool subcommand", func(t *testing.T) {
		// given
		breaking := &commanddoubles.StubBreakingCommand{}
		tool := &commanddoubles.StubToolCommand{
			ToolInfo: &commands.ToolInfo{Path: "/usr/bin/buf", Version: "1.28.1"},
		}
		reporter := &repositorydoubles.SpyReporterRepository{}
		root := buildRootCommand(controllers.NewBreakingController(breaking, reporter, githubactions.New()))
		addSubcommands(root, newTestApp(tool, reporter))
		root.SetArgs([]string{"check-tool", "--buf-path", "/usr/bin/buf"})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, breaking.ExecuteCallCount)
		assert.Equal(t, 1, tool.ExecuteCallCount)
		assert.Equal(t, "/usr/bin/buf", tool.LastBufPath)
	})
}
