package installer

import (
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/arthur-debert/gulps/pkg/logging"
)

// waitDelay bounds how long Run waits for output pipes after the process
// is killed.
const waitDelay = 2 * time.Second

// Runner runs an external command in dir, streaming its output.
type Runner interface {
	Run(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Timeout bounds a single command. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) error {
	logger := logging.GetLogger("installer.exec")

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	logging.LogCommand(name, args)
	logger.Debug().
		Str("workingDir", dir).
		Dur("timeout", r.Timeout).
		Msg("Running command")

	start := time.Now()
	err := cmd.Run()
	logger.Debug().
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("Command finished")

	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
