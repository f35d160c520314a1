package planner

import (
	"testing"

	"github.com/arthur-debert/gulps/pkg/features"
	"github.com/stretchr/testify/assert"
)

func TestDescribePostInstallMessages(t *testing.T) {
	tests := []struct {
		name  string
		tasks []features.FeatureFlag
		want  []string
	}{
		{
			name: "nothing selected",
			want: []string{},
		},
		{
			name:  "serve emits two messages",
			tasks: []features.FeatureFlag{features.Serve},
			want: []string{
				"Run the command gulp serve to launch a live reload server.",
				"Run the command gulp browsersync to launch a browsersync server.",
			},
		},
		{
			name:  "canonical order regardless of input order",
			tasks: []features.FeatureFlag{features.Style, features.Lint, features.Test},
			want: []string{
				"Run the command gulp lint to lint your files.",
				"Run the command gulp test to run the tests.",
				"Run the command gulp sass to compile sass file.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescribePostInstallMessages(NewResolvedFlags(tt.tasks, nil, ""))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostInstallNotesCoverEveryTask(t *testing.T) {
	all := NewResolvedFlags(features.AllFeatures(), nil, "")
	notes := PostInstallNotes(all)

	// lint, serve x2, browserify, release, changelog, test, style
	assert.Len(t, notes, 8)
	assert.Equal(t, "gulp lint", notes[0].Command)
	assert.Equal(t, "gulp sass", notes[len(notes)-1].Command)
}
