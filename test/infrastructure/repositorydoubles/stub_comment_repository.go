//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

// StubCommentRepository implements repositories.CommentRepository as a stub.
type StubCommentRepository struct {
	ProviderName string
	PostErr      error

	// spy: calls received
	Targets     []entities.PullRequestTarget
	Annotations [][]entities.Annotation
}

var _ repositories.CommentRepository = (*StubCommentRepository)(nil)

func (s *StubCommentRepository) Name() string { return s.ProviderName }

func (s *StubCommentRepository) PostComments(
	_ context.Context,
	target entities.PullRequestTarget,
	annotations []entities.Annotation,
) error {
	s.Targets = append(s.Targets, target)
	s.Annotations = append(s.Annotations, annotations)
	return s.PostErr
}
