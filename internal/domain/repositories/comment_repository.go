package repositories

import (
	"context"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
)

// CommentRepository posts annotations as pull request comments on a Git
// hosting service.
type CommentRepository interface {
	// Name returns the hosting service identifier (e.g. "github").
	Name() string

	// PostComments posts one review comment per located annotation and a
	// single summary comment for the others.
	PostComments(
		ctx context.Context,
		target entities.PullRequestTarget,
		annotations []entities.Annotation,
	) error
}
