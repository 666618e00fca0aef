package repositories

import (
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
)

// ReporterRepository renders annotations for the CI platform.
type ReporterRepository interface {
	// Annotate emits one diagnostic per annotation, located when possible.
	Annotate(annotations []entities.Annotation)

	// SetResults publishes the annotations as a single structured output,
	// including when there are none.
	SetResults(annotations []entities.Annotation) error

	// Info emits an informational message.
	Info(message string)

	// Fail marks the run as failed with message.
	Fail(message string)
}
