//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buf-breaking/internal/domain/commands"
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	doubles "github.com/rios0rios0/buf-breaking/test/infrastructure/repositorydoubles"
)

func TestCheckVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		version   string
		expectErr bool
	}{
		{name: "should accept the minimum version", version: "0.41.0"},
		{name: "should accept a newer version", version: "1.28.1"},
		{name: "should accept a v-prefixed version", version: "v1.0.0"},
		{name: "should accept surrounding whitespace", version: " 1.50.0\n"},
		{name: "should accept a newer pre-release", version: "1.0.0-rc1"},
		{name: "should reject an older version", version: "0.40.9", expectErr: true},
		{name: "should reject a pre-release of the minimum", version: "0.41.0-rc1", expectErr: true},
		{name: "should reject an unparsable version", version: "buf version unknown", expectErr: true},
		{name: "should reject an empty version", version: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			err := commands.CheckVersion(tt.version)

			// then
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entities.ErrUnsupportedVersion)
				assert.Contains(t, err.Error(), commands.MinimumBufVersion)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestToolCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return the path and version of a supported buf", func(t *testing.T) {
		t.Parallel()

		// given
		analyzer := &doubles.SpyAnalyzerRepository{BinaryPath: "/opt/buf", VersionResult: "1.28.1"}
		cmd := commands.NewToolCommand(analyzer)

		// when
		info, err := cmd.Execute(context.Background(), "/opt/buf")

		// then
		require.NoError(t, err)
		assert.Equal(t, &commands.ToolInfo{Path: "/opt/buf", Version: "1.28.1"}, info)
		assert.Equal(t, []string{"/opt/buf"}, analyzer.LocatedPaths)
	})

	t.Run("should name both versions when buf is too old", func(t *testing.T) {
		t.Parallel()

		// given
		analyzer := &doubles.SpyAnalyzerRepository{BinaryPath: "/opt/buf", VersionResult: "0.20.0"}
		cmd := commands.NewToolCommand(analyzer)

		// when
		info, err := cmd.Execute(context.Background(), "")

		// then
		require.Error(t, err)
		assert.Nil(t, info)
		assert.Equal(t, "buf must be at least version 0.41.0, but found 0.20.0", err.Error())
	})

	t.Run("should not query the version when buf is missing", func(t *testing.T) {
		t.Parallel()

		// given
		analyzer := &doubles.SpyAnalyzerRepository{
			LocateErr: entities.NewFailure(entities.ErrToolNotFound, "buf is not installed"),
		}
		cmd := commands.NewToolCommand(analyzer)

		// when
		_, err := cmd.Execute(context.Background(), "")

		// then
		require.ErrorIs(t, err, entities.ErrToolNotFound)
		assert.Zero(t, analyzer.VersionCalls)
	})
}
