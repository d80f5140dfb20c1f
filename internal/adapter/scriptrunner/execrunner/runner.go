// Package execrunner executes player scripts through an external
// interpreter with a hard wall-clock bound.
package execrunner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"cradium/internal/domain/crafting"
)

const DefaultTimeout = 10 * time.Second

type Runner struct {
	// Interpreter is the command the script source is handed to,
	// e.g. "sh" or "python3".
	Interpreter string
	// Timeout bounds a single run; zero means DefaultTimeout.
	Timeout time.Duration
}

func New(interpreter string, timeout time.Duration) Runner {
	if interpreter == "" {
		interpreter = "sh"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Runner{Interpreter: interpreter, Timeout: timeout}
}

// Run writes the source to a temp artifact, executes it, and returns
// the combined output. Failures, including timeouts, come back wrapped
// in ErrScriptFailure together with whatever output was produced.
func (r Runner) Run(ctx context.Context, source string) (string, error) {
	file, err := os.CreateTemp("", "cradium-script-*")
	if err != nil {
		return "", fmt.Errorf("%w: create artifact: %v", crafting.ErrScriptFailure, err)
	}
	defer os.Remove(file.Name())

	if _, err := file.WriteString(source); err != nil {
		file.Close()
		return "", fmt.Errorf("%w: write artifact: %v", crafting.ErrScriptFailure, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("%w: write artifact: %v", crafting.ErrScriptFailure, err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	interpreter := r.Interpreter
	if interpreter == "" {
		interpreter = "sh"
	}
	cmd := exec.CommandContext(runCtx, interpreter, file.Name())
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return string(output), fmt.Errorf("%w: timed out after %s", crafting.ErrScriptFailure, timeout)
		}
		return string(output), fmt.Errorf("%w: %v", crafting.ErrScriptFailure, err)
	}
	return string(output), nil
}
