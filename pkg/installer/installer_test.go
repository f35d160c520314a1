package installer

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os/exec"
	"testing"
	"time"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args []string, stdout, _ io.Writer) error {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	_, _ = io.WriteString(stdout, "added 3 packages\n")
	return f.err
}

func TestClientArgs(t *testing.T) {
	tests := []struct {
		client Client
		dev    bool
		want   []string
	}{
		{client: NPM, dev: true, want: []string{"install", "--save-dev", "gulp", "chalk"}},
		{client: NPM, dev: false, want: []string{"install", "gulp", "chalk"}},
		{client: Yarn, dev: true, want: []string{"add", "--dev", "gulp", "chalk"}},
		{client: PNPM, dev: true, want: []string{"add", "--save-dev", "gulp", "chalk"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.client), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.client.Args([]string{"gulp", "chalk"}, tt.dev))
		})
	}
}

func TestParseClient(t *testing.T) {
	c, err := ParseClient("yarn")
	require.NoError(t, err)
	assert.Equal(t, Yarn, c)

	_, err = ParseClient("bower")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInstallMakesSingleBatchedCall(t *testing.T) {
	runner := &fakeRunner{}
	var out bytes.Buffer

	err := New(NPM, runner).WithOutput(&out, io.Discard).
		Install(context.Background(), "/project", []string{"chalk", "gulp", "lodash"}, true)
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, call{
		dir:  "/project",
		name: "npm",
		args: []string{"install", "--save-dev", "chalk", "gulp", "lodash"},
	}, runner.calls[0])
	assert.Equal(t, "added 3 packages\n", out.String())
}

func TestInstallNoPackagesIsNoop(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, New(NPM, runner).Install(context.Background(), "/project", nil, true))
	assert.Empty(t, runner.calls)
}

func TestInstallFailureIsInstallError(t *testing.T) {
	cause := stderrors.New("exit status 1")
	runner := &fakeRunner{err: cause}

	err := New(Yarn, runner).WithOutput(io.Discard, io.Discard).
		Install(context.Background(), "/project", []string{"gulp"}, true)
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrInstall))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "yarn add --dev gulp failed")
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "pnpm add --save-dev gulp", New(PNPM, nil).Command([]string{"gulp"}, true))
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()

	t.Run("streams output from dir", func(t *testing.T) {
		var out bytes.Buffer
		err := ExecRunner{}.Run(context.Background(), dir, "sh", []string{"-c", "pwd"}, &out, io.Discard)
		require.NoError(t, err)
		assert.Contains(t, out.String(), dir)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		err := ExecRunner{}.Run(context.Background(), dir, "sh", []string{"-c", "exit 3"}, io.Discard, io.Discard)
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
	})

	t.Run("timeout", func(t *testing.T) {
		err := ExecRunner{Timeout: 50 * time.Millisecond}.
			Run(context.Background(), dir, "sh", []string{"-c", "exec sleep 5"}, io.Discard, io.Discard)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
