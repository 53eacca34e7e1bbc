// Package interpreter provides the default and the validation rule for the
// Python version constraint written to the manifest.
package interpreter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/indaco/poet/internal/logging"
)

// FallbackVersion is used when no local interpreter can be queried.
const FallbackVersion = "3.12"

var versionRE = regexp.MustCompile(`^[23]\.\d+`)

// releaseRE matches the output of "python3 --version", e.g. "Python 3.11.4".
var releaseRE = regexp.MustCompile(`Python\s+(\d+)\.(\d+)`)

// ErrInvalidVersion is returned by Validate for inputs not starting with 2.X or 3.X.
var ErrInvalidVersion = errors.New("The python version must be in the form 2.X or 3.X where X represents an integer.")

// Validate accepts any input that starts with "2." or "3." followed by digits.
func Validate(input string) error {
	if !versionRE.MatchString(input) {
		return ErrInvalidVersion
	}
	return nil
}

// Runner runs a command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// OSRunner implements Runner with os/exec.
type OSRunner struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewOSRunner creates an OSRunner using exec.CommandContext.
func NewOSRunner() *OSRunner {
	return &OSRunner{execCommand: exec.CommandContext}
}

// Output runs name with args and returns its stdout.
func (r *OSRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := r.execCommand(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return nil, fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}

	// Python 2 prints its version on stderr.
	if stdout.Len() == 0 {
		return stderr.Bytes(), nil
	}
	return stdout.Bytes(), nil
}

// Detect returns the MAJOR.MINOR version of the first interpreter found,
// or FallbackVersion when none answers.
func Detect(ctx context.Context, runner Runner) string {
	logger := logging.FromContext(ctx)

	for _, name := range []string{"python3", "python"} {
		out, err := runner.Output(ctx, name, "--version")
		if err != nil {
			logger.Debug("interpreter lookup failed", "command", name, "err", err)
			continue
		}
		if m := releaseRE.FindSubmatch(out); m != nil {
			return string(m[1]) + "." + string(m[2])
		}
	}

	return FallbackVersion
}
