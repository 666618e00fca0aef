package buf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buf-breaking/internal/domain/entities"
	"github.com/rios0rios0/buf-breaking/internal/domain/repositories"
)

const (
	binaryName = "buf"

	// fileAnnotationExitCode is the exit code buf uses when it ran
	// successfully and printed file annotations.
	fileAnnotationExitCode = 100

	setupActionHint = `buf is not installed; please add the "bufbuild/buf-setup-action" step ` +
		`to your job found at https://github.com/bufbuild/buf-setup-action`
)

// BufAnalyzerRepository implements repositories.AnalyzerRepository by running
// the buf CLI as a child process.
type BufAnalyzerRepository struct {
	lookPath func(file string) (string, error)
}

// NewAnalyzerRepository creates an analyzer that looks buf up on PATH.
func NewAnalyzerRepository() *BufAnalyzerRepository {
	return &BufAnalyzerRepository{lookPath: exec.LookPath}
}

var _ repositories.AnalyzerRepository = (*BufAnalyzerRepository)(nil)

// Locate resolves the buf binary, preferring explicitPath when given.
func (it *BufAnalyzerRepository) Locate(explicitPath string) (string, error) {
	if explicitPath != "" {
		info, err := os.Stat(explicitPath)
		if err != nil || info.IsDir() {
			return "", entities.NewFailure(
				entities.ErrToolNotFound, "buf was not found at %s", explicitPath,
			)
		}
		return explicitPath, nil
	}

	path, err := it.lookPath(binaryName)
	if err != nil || path == "" {
		logger.Debugf("buf lookup on PATH failed: %v", err)
		return "", entities.NewFailure(entities.ErrToolNotFound, "%s", setupActionHint)
	}
	return path, nil
}

// Version runs "buf --version". Older buf releases print the version on
// stderr, so both streams are read.
func (it *BufAnalyzerRepository) Version(ctx context.Context, binary string) (string, error) {
	output, err := exec.CommandContext(ctx, binary, "--version").CombinedOutput()
	if err != nil {
		return "", &entities.AnalyzerError{
			ExitCode: exitCode(err),
			Raw:      string(output),
			Err:      startError(err),
		}
	}

	version := strings.TrimSpace(string(output))
	if line, _, found := strings.Cut(version, "\n"); found {
		version = strings.TrimSpace(line)
	}
	return version, nil
}

// Breaking runs "buf breaking <input> --against <against> --error-format json".
// The credential variables of input.Env are added to this invocation only.
func (it *BufAnalyzerRepository) Breaking(
	ctx context.Context,
	binary string,
	input entities.BreakingInput,
) (*entities.AnalysisResult, error) {
	args := []string{"breaking", input.Input, "--against", input.Against, "--error-format", "json"}
	logger.Debugf("Running %s %s", binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = append(os.Environ(), input.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	raw := joinOutput(stdout.String(), stderr.String())

	if runErr != nil && exitCode(runErr) != fileAnnotationExitCode {
		return nil, &entities.AnalyzerError{
			ExitCode: exitCode(runErr),
			Raw:      raw,
			Err:      startError(runErr),
		}
	}

	annotations, parseErr := ParseAnnotations(stdout.Bytes())
	if parseErr != nil {
		return nil, parseErr
	}

	return &entities.AnalysisResult{
		Annotations: annotations,
		Raw:         raw,
		Diagnostics: strings.TrimSpace(stderr.String()),
	}, nil
}

// exitCode returns the process exit code, or -1 when the process never ran.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// startError keeps err only when the process could not be started; an exit
// status is already carried by the exit code.
func startError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return fmt.Errorf("failed to run buf: %w", err)
}

func joinOutput(stdout, stderr string) string {
	stdout = strings.TrimRight(stdout, "\n")
	stderr = strings.TrimRight(stderr, "\n")
	switch {
	case stdout == "":
		return stderr
	case stderr == "":
		return stdout
	default:
		return stdout + "\n" + stderr
	}
}
