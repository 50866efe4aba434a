package x11

import (
	"context"
	"os/exec"
	"strings"

	"github.com/darkawower/wallcycle/internal/platform"
)

// ExecRunner runs commands with os/exec. The context is only checked
// before start; a running tool is never killed.
type ExecRunner struct{}

// Run executes name with args and returns the combined output.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, &platform.CommandError{
			Command: commandLine(name, args),
			Output:  strings.TrimSpace(string(output)),
			Err:     err,
		}
	}
	return output, nil
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

var _ platform.Runner = ExecRunner{}
