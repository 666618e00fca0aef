//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, without a mock framework.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

// SpyAnalyzerRepository implements repositories.AnalyzerRepository as a configurable spy.
type SpyAnalyzerRepository struct {
	// --- Locate ---
	BinaryPath   string
	LocateErr    error
	LocateCalls  int
	LocatedPaths []string

	// --- Version ---
	VersionResult string
	VersionErr    error
	VersionCalls  int

	// --- Breaking ---
	// Results and BreakingErrs are keyed by the "against" reference.
	Results        map[string]*entities.AnalysisResult
	BreakingErrs   map[string]error
	BreakingInputs []entities.BreakingInput
}

var _ repositories.AnalyzerRepository = (*SpyAnalyzerRepository)(nil)

func (s *SpyAnalyzerRepository) Locate(explicitPath string) (string, error) {
	s.LocateCalls++
	s.LocatedPaths = append(s.LocatedPaths, explicitPath)
	if s.LocateErr != nil {
		return "", s.LocateErr
	}
	return s.BinaryPath, nil
}

func (s *SpyAnalyzerRepository) Version(_ context.Context, _ string) (string, error) {
	s.VersionCalls++
	return s.VersionResult, s.VersionErr
}

func (s *SpyAnalyzerRepository) Breaking(
	_ context.Context, _ string, input entities.BreakingInput,
) (*entities.AnalysisResult, error) {
	s.BreakingInputs = append(s.BreakingInputs, input)
	if err, ok := s.BreakingErrs[input.Against]; ok {
		return nil, err
	}
	if result, ok := s.Results[input.Against]; ok {
		return result, nil
	}
	return &entities.AnalysisResult{Annotations: []entities.Annotation{}}, nil
}

// TotalCalls returns the number of calls that would have spawned buf.
func (s *SpyAnalyzerRepository) TotalCalls() int {
	return s.VersionCalls + len(s.BreakingInputs)
}
