// Package tui answers questions about the terminal nxreport writes to.
package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI providers.
var ciEnvs = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"CIRCLECI",               // CircleCI
	"TRAVIS",                 // Travis CI
	"JENKINS_HOME",           // Jenkins
	"BUILDKITE",              // Buildkite
	"TF_BUILD",               // Azure Pipelines
}

// isTerminalFn is swapped in tests.
var isTerminalFn = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminalFn()
}

// IsCI reports whether a known CI environment variable is set.
func IsCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// ColorDisabled reports whether styled output should be turned off:
// the user asked for it, NO_COLOR is set, stdout is not a terminal, or
// the report is being generated in CI.
func ColorDisabled(flag bool) bool {
	if flag {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !IsTTY() || IsCI()
}
