package tui

import (
	"os"

	"golang.org/x/term"
)

// EnvNoInteractive disables every prompt and spinner when set to any value.
const EnvNoInteractive = "ECLEAN_NO_INTERACTIVE"

// ciEnvs are the environment variables that mark a CI/CD run.
var ciEnvs = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"CIRCLECI",               // CircleCI
	"TRAVIS",                 // Travis CI
	"JENKINS_HOME",           // Jenkins
	"BUILDKITE",              // Buildkite
	"BITBUCKET_BUILD_NUMBER", // Bitbucket Pipelines
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure Pipelines
}

// isTerminalFn is swapped in tests.
var isTerminalFn = func(fd uintptr) bool {
	return term.IsTerminal(int(fd)) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// IsInteractive reports whether huh prompts and spinners can be shown.
// It returns false when stdin or stdout is not a terminal, in CI, or when
// ECLEAN_NO_INTERACTIVE is set. Callers fall back to line prompts.
func IsInteractive() bool {
	if os.Getenv(EnvNoInteractive) != "" {
		return false
	}
	if !isTerminalFn(os.Stdin.Fd()) || !isTerminalFn(os.Stdout.Fd()) {
		return false
	}
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return true
}
