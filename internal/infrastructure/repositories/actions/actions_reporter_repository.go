package actions

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sethvargo/go-githubactions"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

// ResultsOutput is the name of the step output holding the annotations.
const ResultsOutput = "results"

// outputFileEnvKey names the file the runner reads step outputs from.
const outputFileEnvKey = "GITHUB_OUTPUT"

// ActionsReporterRepository implements repositories.ReporterRepository with
// GitHub Actions workflow commands.
type ActionsReporterRepository struct {
	action *githubactions.Action
}

// NewReporterRepository creates a reporter writing through action.
func NewReporterRepository(action *githubactions.Action) *ActionsReporterRepository {
	return &ActionsReporterRepository{action: action}
}

var _ repositories.ReporterRepository = (*ActionsReporterRepository)(nil)

// Annotate emits an "::error" command per annotation.
func (it *ActionsReporterRepository) Annotate(annotations []entities.Annotation) {
	for _, annotation := range annotations {
		it.action.WithFieldsMap(annotationFields(annotation)).Errorf("%s", annotation.Message)
	}
}

// SetResults writes the annotations as a JSON array to the "results" output.
// Outside of a runner there is no output file and nothing is written.
func (it *ActionsReporterRepository) SetResults(annotations []entities.Annotation) (err error) {
	if annotations == nil {
		annotations = []entities.Annotation{}
	}
	encoded, err := json.Marshal(annotations)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if it.action.Getenv(outputFileEnvKey) == "" {
		logger.Debugf("%s is not set, skipping the %q output", outputFileEnvKey, ResultsOutput)
		return nil
	}

	// SetOutput panics when the output file cannot be written
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("failed to write the %q output: %v", ResultsOutput, recovered)
		}
	}()
	it.action.SetOutput(ResultsOutput, string(encoded))
	return nil
}

// Info prints message on the job log.
func (it *ActionsReporterRepository) Info(message string) {
	it.action.Infof("%s", message)
}

// Fail emits an unlocated "::error" command. The process exit code is owned
// by the caller.
func (it *ActionsReporterRepository) Fail(message string) {
	it.action.Errorf("%s", message)
}

// annotationFields returns the workflow command properties of annotation.
// Unlocated annotations only carry a title; file-scoped ones also a file.
func annotationFields(annotation entities.Annotation) map[string]string {
	fields := map[string]string{"title": annotation.Type}
	if annotation.Path != "" {
		fields["file"] = annotation.Path
	}
	if !annotation.Located() {
		return fields
	}

	fields["line"] = strconv.Itoa(annotation.StartLine)
	fields["col"] = strconv.Itoa(annotation.StartColumn)
	if annotation.EndLine > 0 {
		fields["endLine"] = strconv.Itoa(annotation.EndLine)
	}
	if annotation.EndColumn > 0 {
		fields["endColumn"] = strconv.Itoa(annotation.EndColumn)
	}
	return fields
}
