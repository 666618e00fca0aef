package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

// MinimumBufVersion is the oldest buf release supported. It is the first
// release with the FileAnnotation exit code:
// https://github.com/bufbuild/buf/releases/tag/v0.41.0
const MinimumBufVersion = "0.41.0"

// Tool is the interface for the tool check command.
type Tool interface {
	Execute(ctx context.Context, bufPath string) (*ToolInfo, error)
}

// ToolInfo describes a buf binary that passed the version gate.
type ToolInfo struct {
	Path    string
	Version string
}

// ToolCommand resolves the buf binary and checks its version.
type ToolCommand struct {
	analyzer repositories.AnalyzerRepository
}

// NewToolCommand creates a new ToolCommand.
func NewToolCommand(analyzer repositories.AnalyzerRepository) *ToolCommand {
	return &ToolCommand{analyzer: analyzer}
}

// Execute locates buf (bufPath overrides the PATH lookup) and fails when its
// version is below MinimumBufVersion.
func (it *ToolCommand) Execute(ctx context.Context, bufPath string) (*ToolInfo, error) {
	binary, err := it.analyzer.Locate(bufPath)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Using buf at %s", binary)

	version, err := it.analyzer.Version(ctx, binary)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Detected buf version %s", version)

	if gateErr := checkVersion(version); gateErr != nil {
		return nil, gateErr
	}

	return &ToolInfo{Path: binary, Version: version}, nil
}

// checkVersion compares version with MinimumBufVersion. Versions that are not
// semantic versions are rejected.
func checkVersion(version string) error {
	normalized := "v" + strings.TrimPrefix(strings.TrimSpace(version), "v")
	if !semver.IsValid(normalized) {
		return entities.NewFailure(
			entities.ErrUnsupportedVersion,
			"buf must be at least version %s, but found unparsable version %q",
			MinimumBufVersion, version,
		)
	}
	if semver.Compare(normalized, "v"+MinimumBufVersion) < 0 {
		return entities.NewFailure(
			entities.ErrUnsupportedVersion,
			"buf must be at least version %s, but found %s",
			MinimumBufVersion, version,
		)
	}
	return nil
}
