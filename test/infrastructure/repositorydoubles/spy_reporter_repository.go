//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

// SpyReporterRepository implements repositories.ReporterRepository as a spy.
type SpyReporterRepository struct {
	Annotated     []entities.Annotation
	AnnotateCalls int

	// Results is nil until SetResults is called.
	Results       []entities.Annotation
	SetResultsErr error
	ResultsCalls  int

	Infos    []string
	Failures []string
}

var _ repositories.ReporterRepository = (*SpyReporterRepository)(nil)

func (s *SpyReporterRepository) Annotate(annotations []entities.Annotation) {
	s.AnnotateCalls++
	s.Annotated = append(s.Annotated, annotations...)
}

func (s *SpyReporterRepository) SetResults(annotations []entities.Annotation) error {
	s.ResultsCalls++
	s.Results = append([]entities.Annotation{}, annotations...)
	return s.SetResultsErr
}

func (s *SpyReporterRepository) Info(message string) {
	s.Infos = append(s.Infos, message)
}

func (s *SpyReporterRepository) Fail(message string) {
	s.Failures = append(s.Failures, message)
}
