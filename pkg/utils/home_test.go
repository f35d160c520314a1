package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHomeDirectory(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	home, err := GetHomeDirectory()
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{input: "~", want: home},
		{input: "~/web/app", want: filepath.Join(home, "web", "app")},
		{input: "~user/app", want: "~user/app"},
		{input: "/abs/path", want: "/abs/path"},
		{input: "rel/path", want: "rel/path"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandHome(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GULPS_TEST_PROJECT", "site")

	assert.Equal(t, filepath.Join(home, "site"), ExpandPath("~/$GULPS_TEST_PROJECT"))
	assert.Equal(t, "/srv/site", ExpandPath("/srv/${GULPS_TEST_PROJECT}"))
	assert.Equal(t, ".", ExpandPath("."))
}
