package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Project is a temporary target project.
type Project struct {
	t   *testing.T
	Dir string
}

// NewProject creates an empty project directory named name.
func NewProject(t *testing.T, name string) *Project {
	t.Helper()
	return &Project{t: t, Dir: CreateDir(t, t.TempDir(), name)}
}

// WithPackageJSON writes a minimal package.json with the given name.
func (p *Project) WithPackageJSON(name string) *Project {
	p.t.Helper()
	CreateFile(p.t, p.Dir, "package.json", fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"0.1.0\"\n}\n", name))
	return p
}

// WithFile writes a file relative to the project.
func (p *Project) WithFile(rel, content string) *Project {
	p.t.Helper()
	CreateFile(p.t, p.Dir, rel, content)
	return p
}

// Path joins rel onto the project directory.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Dir, filepath.FromSlash(rel))
}

// Isolate points XDG config and state at temp dirs and blanks every GULPS_*
// variable for the duration of the test.
func Isolate(t *testing.T) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "GULPS_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}
}
