package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	p := NewProject(t, "demo").
		WithPackageJSON("demo-app").
		WithFile("src/index.js", "console.log(1);")

	assert.True(t, DirExists(t, p.Dir))
	assert.True(t, FileExists(t, p.Path("src/index.js")))
	assert.False(t, FileExists(t, p.Path("src")))
	AssertFileContains(t, p.Path("package.json"), `"name": "demo-app"`)
	AssertNoFile(t, p.Path("gulpfile.js"))
}

func TestIsolate(t *testing.T) {
	t.Setenv("GULPS_INSTALL_CLIENT", "yarn")

	t.Run("clears gulps variables", func(t *testing.T) {
		Isolate(t)
		_, set := os.LookupEnv("GULPS_INSTALL_CLIENT")
		assert.False(t, set)
		assert.NotEmpty(t, os.Getenv("XDG_CONFIG_HOME"))
	})
}

func TestFakeInstaller(t *testing.T) {
	f := &FakeInstaller{}
	require.NoError(t, f.Install(context.Background(), "/p", []string{"gulp"}, true))

	assert.Equal(t, []InstallCall{{Dir: "/p", Packages: []string{"gulp"}, Dev: true}}, f.Calls())
}
