package repositories

import (
	"github.com/sethvargo/go-githubactions"
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/buf-breaking/internal/domain/repositories"
	actionsRepo "github.com/rios0rios0/buf-breaking/internal/infrastructure/repositories/actions"
	bufRepo "github.com/rios0rios0/buf-breaking/internal/infrastructure/repositories/buf"
	ghRepo "github.com/rios0rios0/buf-breaking/internal/infrastructure/repositories/github"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The workflow command writer shared by the reporter and the controllers
	if err := container.Provide(func() *githubactions.Action {
		return githubactions.New()
	}); err != nil {
		return err
	}

	// Register comment registry with all comment provider factories
	if err := container.Provide(func() *CommentRegistry {
		reg := NewCommentRegistry()
		reg.Register("github", ghRepo.NewCommentRepository)
		return reg
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func() domainRepos.AnalyzerRepository {
		return bufRepo.NewAnalyzerRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.CredentialRepository {
		return bufRepo.NewCredentialRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func(action *githubactions.Action) domainRepos.ReporterRepository {
		return actionsRepo.NewReporterRepository(action)
	}); err != nil {
		return err
	}

	return nil
}
