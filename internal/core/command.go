package core

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner runs external tools and returns their trimmed stdout.
type CommandRunner interface {
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner returns a CommandRunner that spawns real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Output runs name with args in dir. Stderr is folded into the error on failure.
func (r *ExecRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

var _ CommandRunner = (*ExecRunner)(nil)

// MockCommandRunner returns canned output keyed by "name arg1 arg2".
type MockCommandRunner struct {
	Outputs map[string]string
	Errors  map[string]error
	Calls   []string
}

// NewMockCommandRunner returns an empty MockCommandRunner.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

func (m *MockCommandRunner) Output(_ context.Context, _ string, name string, args ...string) (string, error) {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	m.Calls = append(m.Calls, key)
	if err, ok := m.Errors[key]; ok {
		return "", err
	}
	if out, ok := m.Outputs[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("%s: %w", key, exec.ErrNotFound)
}

var _ CommandRunner = (*MockCommandRunner)(nil)
