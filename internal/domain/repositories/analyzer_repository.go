package repositories

import (
	"context"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
)

// AnalyzerRepository abstracts the external buf binary.
// Breaking-change detection itself is owned by buf; implementations only
// locate the binary, run it and parse what it prints.
type AnalyzerRepository interface {
	// Locate resolves the buf binary. An empty explicitPath means a PATH lookup.
	// It returns an error wrapping entities.ErrToolNotFound when buf is missing.
	Locate(explicitPath string) (string, error)

	// Version returns the version string reported by the binary.
	Version(ctx context.Context, binary string) (string, error)

	// Breaking runs "buf breaking" and returns the parsed annotations.
	// Failures wrap entities.ErrAnalyzerExecution or entities.ErrMalformedOutput.
	Breaking(
		ctx context.Context,
		binary string,
		input entities.BreakingInput,
	) (*entities.AnalysisResult, error)
}
