package installer

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/logging"
)

// Installer installs packages with one client.
type Installer struct {
	client Client
	runner Runner
	stdout io.Writer
	stderr io.Writer
}

// New returns an installer for client that runs commands through runner.
// A nil runner defaults to ExecRunner without timeout.
func New(client Client, runner Runner) *Installer {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Installer{
		client: client,
		runner: runner,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects the package manager output.
func (i *Installer) WithOutput(stdout, stderr io.Writer) *Installer {
	i.stdout = stdout
	i.stderr = stderr
	return i
}

// Command returns the command line Install would run, for display.
func (i *Installer) Command(packages []string, dev bool) string {
	return strings.Join(append([]string{string(i.client)}, i.client.Args(packages, dev)...), " ")
}

// Install installs packages into dir in a single call. An empty package
// list is a no-op.
func (i *Installer) Install(ctx context.Context, dir string, packages []string, dev bool) error {
	logger := logging.GetLogger("installer")
	if len(packages) == 0 {
		logger.Debug().Msg("No packages to install")
		return nil
	}

	done := logging.LogOperationStart(logger, "install")
	defer done()

	args := i.client.Args(packages, dev)
	logger.Info().
		Str("client", string(i.client)).
		Int("packages", len(packages)).
		Str("dir", dir).
		Msg("Installing dependencies")

	if err := i.runner.Run(ctx, dir, string(i.client), args, i.stdout, i.stderr); err != nil {
		return errors.Wrapf(err, errors.ErrInstall, "%s failed", i.Command(packages, dev)).
			WithDetail("client", string(i.client)).
			WithDetail("dir", dir)
	}
	return nil
}
