package services

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandExecutor abstracts external binary execution for testability.
// Run returns the command's stdout; stderr is kept out of the parsed
// output and surfaces only in the error. On a non-zero exit the
// captured stdout is still returned alongside the error.
type CommandExecutor interface {
	Run(ctx context.Context, binary string, args ...string) (string, error)
}

// NewCommandExecutor returns the executor used outside of tests.
func NewCommandExecutor() CommandExecutor {
	return commandExecutor{}
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		return stdout.String(), fmt.Errorf("%s: %w: %s", binary, err, detail)
	}
	return stdout.String(), nil
}
