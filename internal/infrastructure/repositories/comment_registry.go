package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

// CommentFactory is a constructor function that creates a CommentRepository given an auth token.
type CommentFactory func(token string) domainRepos.CommentRepository

// CommentRegistry manages all registered comment provider implementations.
type CommentRegistry struct {
	providers map[string]CommentFactory
}

// NewCommentRegistry creates an empty comment registry.
func NewCommentRegistry() *CommentRegistry {
	return &CommentRegistry{
		providers: make(map[string]CommentFactory),
	}
}

// Register adds a comment factory under the given name (e.g. "github").
func (r *CommentRegistry) Register(name string, factory CommentFactory) {
	r.providers[name] = factory
}

// Get returns a configured comment repository for the given name and token.
func (r *CommentRegistry) Get(name, token string) (domainRepos.CommentRepository, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf(
			"unknown comment provider: %q (registered: %s)", name, strings.Join(r.Names(), ", "),
		)
	}
	return factory(token), nil
}

// Names returns the sorted list of registered provider names.
func (r *CommentRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
