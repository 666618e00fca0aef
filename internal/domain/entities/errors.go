package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks a required input that is missing or inconsistent.
	ErrConfiguration = errors.New("configuration error")
	// ErrToolNotFound marks a missing buf binary.
	ErrToolNotFound = errors.New("buf not found")
	// ErrUnsupportedVersion marks a buf binary older than the minimum version.
	ErrUnsupportedVersion = errors.New("unsupported buf version")
	// ErrAnalyzerExecution marks a buf run that failed outside the annotation exit code.
	ErrAnalyzerExecution = errors.New("buf execution failed")
	// ErrMalformedOutput marks buf output that could not be parsed into annotations.
	ErrMalformedOutput = errors.New("malformed buf output")
	// ErrBreakingChanges marks a run that found breaking changes.
	ErrBreakingChanges = errors.New("breaking changes found")
	// ErrInternal marks an unexpected failure caught at the command boundary.
	ErrInternal = errors.New("internal error")
)

// FailureError is an error whose message is shown to the user as is,
// while Kind keeps it matchable with errors.Is.
type FailureError struct {
	Kind    error
	Message string
}

func (e *FailureError) Error() string { return e.Message }
func (e *FailureError) Unwrap() error { return e.Kind }

// NewFailure creates a FailureError of the given kind.
func NewFailure(kind error, format string, args ...any) error {
	return &FailureError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewConfigurationError creates a FailureError of kind ErrConfiguration.
func NewConfigurationError(format string, args ...any) error {
	return NewFailure(ErrConfiguration, format, args...)
}

// NewBreakingChangesError creates the failure returned when annotations remain
// after filtering.
func NewBreakingChangesError(count int, incremental bool) error {
	qualifier := ""
	if incremental {
		qualifier = "new "
	}
	return NewFailure(ErrBreakingChanges, "found %d %sbreaking changes.", count, qualifier)
}

// AnalyzerError is returned when buf exits with a code that does not mean
// "annotations found". Raw holds the output of the run verbatim.
type AnalyzerError struct {
	ExitCode int
	Raw      string
	Err      error
}

func (e *AnalyzerError) Error() string {
	var builder strings.Builder
	if e.ExitCode >= 0 {
		fmt.Fprintf(&builder, "buf exited with code %d", e.ExitCode)
	} else {
		builder.WriteString("buf could not be run")
	}
	if e.Err != nil {
		fmt.Fprintf(&builder, ": %v", e.Err)
	}
	if raw := strings.TrimSpace(e.Raw); raw != "" {
		builder.WriteString("\n")
		builder.WriteString(raw)
	}
	return builder.String()
}

func (e *AnalyzerError) Unwrap() error { return ErrAnalyzerExecution }
