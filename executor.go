package hostid

import (
	"context"
	"os/exec"
	"time"
)

// defaultTimeout bounds a single system command.
const defaultTimeout = 3 * time.Second

// CommandExecutor runs a system command and returns its standard output,
// allowing command-backed lookups to be replaced in tests.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
}

// defaultCommandExecutor implements CommandExecutor using actual system command execution.
type defaultCommandExecutor struct {
	Timeout time.Duration
}

// Execute runs a system command with a timeout and returns the output.
func (e *defaultCommandExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := exec.CommandContext(timeoutCtx, name, args...).Output()
	if err != nil {
		return nil, &CommandError{Command: name, Err: err}
	}

	return output, nil
}

// executeCommand runs name through executor, falling back to the default
// executor when none is configured.
func executeCommand(ctx context.Context, executor CommandExecutor, name string, args ...string) ([]byte, error) {
	if executor == nil {
		executor = &defaultCommandExecutor{Timeout: defaultTimeout}
	}

	return executor.Execute(ctx, name, args...)
}
