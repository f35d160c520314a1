package generator

import (
	"sync"
	"testing"

	"github.com/arthur-debert/gulps/pkg/filesystem"
	"github.com/arthur-debert/gulps/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHumanize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"myApp", "My app"},
		{"my_app_name", "My app name"},
		{"my-app", "My app"},
		{"  user_id", "User"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Humanize(tt.in), tt.in)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"My app", "my-app"},
		{"Café Über", "cafe-uber"},
		{"@scope/pkg", "scope-pkg"},
		{"--a  b--", "a-b"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestSlugifyConcurrent(t *testing.T) {
	inputs := []struct{ in, want string }{
		{"Café Project", "cafe-project"},
		{"Crème Brûlée", "creme-brulee"},
		{"Señor Naïve", "senor-naive"},
		{"Zoë's Gulpfile", "zoe-s-gulpfile"},
	}

	var wg sync.WaitGroup
	results := make(chan [2]string, 64*len(inputs))
	for i := 0; i < 64; i++ {
		for _, tt := range inputs {
			wg.Add(1)
			go func(in, want string) {
				defer wg.Done()
				results <- [2]string{want, Slugify(in)}
			}(tt.in, tt.want)
		}
	}
	wg.Wait()
	close(results)

	for r := range results {
		assert.Equal(t, r[0], r[1])
	}
}

func TestAppName(t *testing.T) {
	fsys := filesystem.NewOS()

	withPkg := testutil.NewProject(t, "folder").WithPackageJSON("superApp")
	assert.Equal(t, "super-app", AppName(fsys, withPkg.Dir))

	noPkg := testutil.NewProject(t, "my_project")
	assert.Equal(t, "my-project", AppName(fsys, noPkg.Dir))

	broken := testutil.NewProject(t, "fallback").WithFile("package.json", "{not json")
	assert.Equal(t, "fallback", AppName(fsys, broken.Dir))

	symbols := testutil.NewProject(t, "___")
	assert.Equal(t, "app", AppName(fsys, symbols.Dir))
}
