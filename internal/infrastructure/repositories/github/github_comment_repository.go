package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

const (
	providerName  = "github"
	diffSideRight = "RIGHT"

	defaultAttempts = 3
	defaultDelay    = 500 * time.Millisecond
)

// GitHubCommentRepository implements repositories.CommentRepository for GitHub.
type GitHubCommentRepository struct {
	client   *gh.Client
	attempts uint
	delay    time.Duration
}

// NewCommentRepository creates a GitHub comment poster with the given token.
func NewCommentRepository(token string) repositories.CommentRepository {
	return newCommentRepository(gh.NewClient(nil).WithAuthToken(token))
}

func newCommentRepository(client *gh.Client) *GitHubCommentRepository {
	return &GitHubCommentRepository{
		client:   client,
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
}

func (p *GitHubCommentRepository) Name() string { return providerName }

// PostComments creates a review comment on the pull request diff for every
// located annotation. The remaining ones are grouped in one issue comment.
// It stops at the first comment that cannot be created.
func (p *GitHubCommentRepository) PostComments(
	ctx context.Context,
	target entities.PullRequestTarget,
	annotations []entities.Annotation,
) error {
	var unlocated []entities.Annotation
	for _, annotation := range annotations {
		if !annotation.Located() {
			unlocated = append(unlocated, annotation)
			continue
		}
		if err := p.createReviewComment(ctx, target, annotation); err != nil {
			return err
		}
	}

	if len(unlocated) == 0 {
		return nil
	}
	return p.createIssueComment(ctx, target, unlocated)
}

func (p *GitHubCommentRepository) createReviewComment(
	ctx context.Context,
	target entities.PullRequestTarget,
	annotation entities.Annotation,
) error {
	comment := &gh.PullRequestComment{
		Body:     gh.String(commentBody(annotation)),
		CommitID: gh.String(target.HeadSHA),
		Path:     gh.String(annotation.Path),
		Line:     gh.Int(annotation.StartLine),
		Side:     gh.String(diffSideRight),
	}
	if annotation.EndLine > annotation.StartLine {
		comment.StartLine = gh.Int(annotation.StartLine)
		comment.StartSide = gh.String(diffSideRight)
		comment.Line = gh.Int(annotation.EndLine)
	}

	err := p.retry(ctx, func() error {
		_, _, createErr := p.client.PullRequests.CreateComment(
			ctx, target.Owner, target.Repository, target.Number, comment,
		)
		return createErr
	})
	if err != nil {
		return fmt.Errorf(
			"failed to comment on %s:%d: %w", annotation.Path, annotation.StartLine, err,
		)
	}

	logger.Debugf("Commented on %s:%d", annotation.Path, annotation.StartLine)
	return nil
}

func (p *GitHubCommentRepository) createIssueComment(
	ctx context.Context,
	target entities.PullRequestTarget,
	annotations []entities.Annotation,
) error {
	lines := make([]string, 0, len(annotations)+1)
	lines = append(lines, "buf found breaking changes that could not be placed on the diff:", "")
	for _, annotation := range annotations {
		lines = append(lines, "- "+commentBody(annotation))
	}
	comment := &gh.IssueComment{Body: gh.String(strings.Join(lines, "\n"))}

	err := p.retry(ctx, func() error {
		_, _, createErr := p.client.Issues.CreateComment(
			ctx, target.Owner, target.Repository, target.Number, comment,
		)
		return createErr
	})
	if err != nil {
		return fmt.Errorf("failed to comment on pull request #%d: %w", target.Number, err)
	}
	return nil
}

// retry runs fn until it succeeds, the attempts run out, or GitHub answers
// with a client error.
func (p *GitHubCommentRepository) retry(ctx context.Context, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.Delay(p.delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
	)
}

func isRetryable(err error) bool {
	var responseErr *gh.ErrorResponse
	if errors.As(err, &responseErr) && responseErr.Response != nil {
		return responseErr.Response.StatusCode >= http.StatusInternalServerError
	}
	return true
}

func commentBody(annotation entities.Annotation) string {
	if annotation.Path != "" && !annotation.Located() {
		return fmt.Sprintf("**%s** (`%s`): %s", annotation.Type, annotation.Path, annotation.Message)
	}
	return fmt.Sprintf("**%s**: %s", annotation.Type, annotation.Message)
}
