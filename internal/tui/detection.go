package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI systems.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"DRONE",
	"TF_BUILD",
}

// IsInteractive reports whether prompts can be shown: both stdin and
// stdout must be terminals and no CI environment may be detected.
func IsInteractive() bool {
	if !IsTTY() {
		return false
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // G115: fd is a small value, no overflow risk
		return false
	}
	return !inCI(os.Getenv)
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

func inCI(getenv func(string) string) bool {
	for _, env := range ciEnvs {
		if getenv(env) != "" {
			return true
		}
	}
	return false
}
