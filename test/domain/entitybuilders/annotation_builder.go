//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// AnnotationBuilder helps create test annotations with a fluent interface.
type AnnotationBuilder struct {
	*testkit.BaseBuilder
	path        string
	startLine   int
	startColumn int
	endLine     int
	endColumn   int
	kind        string
	message     string
}

// NewAnnotationBuilder creates a new located annotation builder with sensible defaults.
func NewAnnotationBuilder() *AnnotationBuilder {
	return &AnnotationBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "a.proto",
		startLine:   10,
		startColumn: 3,
		kind:        "FIELD_NO_DELETE",
		message:     "field removed",
	}
}

// WithPath sets the file path.
func (b *AnnotationBuilder) WithPath(path string) *AnnotationBuilder {
	b.path = path
	return b
}

// WithPosition sets the start line and column.
func (b *AnnotationBuilder) WithPosition(line, column int) *AnnotationBuilder {
	b.startLine = line
	b.startColumn = column
	return b
}

// WithEnd sets the end line and column.
func (b *AnnotationBuilder) WithEnd(line, column int) *AnnotationBuilder {
	b.endLine = line
	b.endColumn = column
	return b
}

// WithType sets the incompatibility type.
func (b *AnnotationBuilder) WithType(kind string) *AnnotationBuilder {
	b.kind = kind
	return b
}

// WithMessage sets the message.
func (b *AnnotationBuilder) WithMessage(message string) *AnnotationBuilder {
	b.message = message
	return b
}

// Unlocated clears the path and the position.
func (b *AnnotationBuilder) Unlocated() *AnnotationBuilder {
	b.path = ""
	b.startLine, b.startColumn = 0, 0
	b.endLine, b.endColumn = 0, 0
	return b
}

// Build creates the annotation (satisfies testkit.Builder interface).
func (b *AnnotationBuilder) Build() interface{} {
	return b.BuildAnnotation()
}

// BuildAnnotation creates the annotation with a concrete return type.
func (b *AnnotationBuilder) BuildAnnotation() entities.Annotation {
	return entities.Annotation{
		Path:        b.path,
		StartLine:   b.startLine,
		StartColumn: b.startColumn,
		EndLine:     b.endLine,
		EndColumn:   b.endColumn,
		Type:        b.kind,
		Message:     b.message,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *AnnotationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "a.proto"
	b.startLine = 10
	b.startColumn = 3
	b.endLine = 0
	b.endColumn = 0
	b.kind = "FIELD_NO_DELETE"
	b.message = "field removed"
	return b
}

// Clone creates a deep copy of the AnnotationBuilder.
func (b *AnnotationBuilder) Clone() testkit.Builder {
	return &AnnotationBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		startLine:   b.startLine,
		startColumn: b.startColumn,
		endLine:     b.endLine,
		endColumn:   b.endColumn,
		kind:        b.kind,
		message:     b.message,
	}
}
