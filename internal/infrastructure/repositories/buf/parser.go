package buf

import (
	"bufio"
	"bytes"
	"encoding/json"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
)

const maxRecordSize = 1024 * 1024

// fileAnnotation is the JSON record buf prints per annotation with
// "--error-format json". Pointers tell a missing field from a zero one.
type fileAnnotation struct {
	Path        *string `json:"path"`
	StartLine   *int    `json:"start_line"`
	StartColumn *int    `json:"start_column"`
	EndLine     *int    `json:"end_line"`
	EndColumn   *int    `json:"end_column"`
	Type        *string `json:"type"`
	Message     *string `json:"message"`
}

// ParseAnnotations decodes buf's JSON Lines output. Blank lines are skipped;
// any other line that is not a valid annotation fails the whole parse.
func ParseAnnotations(output []byte) ([]entities.Annotation, error) {
	annotations := make([]entities.Annotation, 0)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxRecordSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record fileAnnotation
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, entities.NewFailure(
				entities.ErrMalformedOutput,
				"failed to parse buf output line %d: %v: %s", lineNumber, err, line,
			)
		}

		annotation, err := record.toAnnotation()
		if err != nil {
			return nil, entities.NewFailure(
				entities.ErrMalformedOutput,
				"invalid annotation on buf output line %d: %v: %s", lineNumber, err, line,
			)
		}
		annotations = append(annotations, annotation)
	}

	if err := scanner.Err(); err != nil {
		return nil, entities.NewFailure(
			entities.ErrMalformedOutput, "failed to read buf output: %v", err,
		)
	}

	return annotations, nil
}

// toAnnotation validates the record. A position needs both a line and a
// column, and a position needs a path.
func (r fileAnnotation) toAnnotation() (entities.Annotation, error) {
	if r.Type == nil || *r.Type == "" {
		return entities.Annotation{}, errMissingField("type")
	}
	if r.Message == nil || *r.Message == "" {
		return entities.Annotation{}, errMissingField("message")
	}

	annotation := entities.Annotation{
		Path:        value(r.Path),
		StartLine:   value(r.StartLine),
		StartColumn: value(r.StartColumn),
		EndLine:     value(r.EndLine),
		EndColumn:   value(r.EndColumn),
		Type:        *r.Type,
		Message:     *r.Message,
	}

	hasLine := annotation.StartLine > 0
	hasColumn := annotation.StartColumn > 0
	switch {
	case annotation.StartLine < 0 || annotation.StartColumn < 0 ||
		annotation.EndLine < 0 || annotation.EndColumn < 0:
		return entities.Annotation{}, errInvalidPosition("negative position")
	case hasLine != hasColumn:
		return entities.Annotation{}, errInvalidPosition("start_line and start_column must be set together")
	case hasLine && annotation.Path == "":
		return entities.Annotation{}, errInvalidPosition("a position requires a path")
	case !hasLine && (annotation.EndLine > 0 || annotation.EndColumn > 0):
		return entities.Annotation{}, errInvalidPosition("an end position requires a start position")
	}

	return annotation, nil
}

func value[T any](pointer *T) T {
	var zero T
	if pointer == nil {
		return zero
	}
	return *pointer
}
