package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// commandError wraps a failed external tool invocation with the command
// line and its combined output.
type commandError struct {
	cmd     string
	output  string
	wrapped error
}

func (e *commandError) Error() string {
	return fmt.Sprintf("command failed: %s\nCommand: %s\nOutput: %s", e.wrapped, e.cmd, e.output)
}

func (e *commandError) Unwrap() error {
	return e.wrapped
}

// newCommandError creates a commandError with a truncated command line.
func newCommandError(cmd *exec.Cmd, output []byte, err error) error {
	cmdStr := cmd.String()
	if len(cmdStr) > 200 {
		cmdStr = cmdStr[:200] + "..."
	}
	return &commandError{
		cmd:     cmdStr,
		output:  string(output),
		wrapped: err,
	}
}

// runTool executes one external tool invocation and waits for it.
func runTool(ctx context.Context, name string, args ...string) error {
	slog.Debug("running external tool", "command", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return newCommandError(cmd, output, err)
	}
	return nil
}
