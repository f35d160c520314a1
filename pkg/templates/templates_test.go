package templates

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/features"
	"github.com/arthur-debert/gulps/pkg/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(tasks []features.FeatureFlag, platforms []features.PlatformFlag) Context {
	r := planner.NewResolvedFlags(tasks, platforms, "https://github.com/acme/app")
	return NewContext("my-app", "", r, planner.PlanArtifacts(r))
}

func TestEveryPlannedTemplateExists(t *testing.T) {
	r := NewRenderer()
	ids, err := r.IDs()
	require.NoError(t, err)

	all := planner.PlanArtifacts(planner.NewResolvedFlags(features.AllFeatures(), nil, ""))
	for _, tmpl := range all.Files() {
		assert.Contains(t, ids, tmpl.ID)
	}
}

func TestRenderEveryTemplate(t *testing.T) {
	r := NewRenderer()
	ctx := contextFor(features.AllFeatures(), features.AllPlatforms())

	all := planner.PlanArtifacts(planner.NewResolvedFlags(features.AllFeatures(), nil, ""))
	for _, tmpl := range all.Files() {
		t.Run(string(tmpl.ID), func(t *testing.T) {
			out, err := r.Render(tmpl.ID, ctx)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(out), "'use strict';"))
			assert.NotContains(t, string(out), "<no value>")
		})
	}
}

func TestRenderConstants(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("common/constants.js", contextFor(
		[]features.FeatureFlag{features.Style},
		[]features.PlatformFlag{features.Bootstrap}))
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "appname: 'my-app',")
	assert.Contains(t, s, "repository: 'https://github.com/acme/app',")
	assert.Contains(t, s, "css: ['./bower_components/bootstrap/dist/bootstrap.css', './bower_components/bootstrap/dist/bootstrap-theme.css'],")
	assert.Contains(t, s, "fonts: ['./bower_components/bootstrap/dist/fonts/*.*'],")
}

func TestRenderConstantsPlaceholders(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("common/constants.js", contextFor([]features.FeatureFlag{features.Lint}, nil))
	require.NoError(t, err)

	assert.Contains(t, string(out), "css: [''],")
	assert.Contains(t, string(out), "fonts: [],")
}

func TestRenderTestChainsLintOnlyWhenEnabled(t *testing.T) {
	r := NewRenderer()

	withLint, err := r.Render("tasks/test.js", contextFor([]features.FeatureFlag{features.Lint, features.Test}, nil))
	require.NoError(t, err)
	assert.Contains(t, string(withLint), "runSequence(\n        'lint',\n        ['mocha', 'karma'],")

	withoutLint, err := r.Render("tasks/test.js", contextFor([]features.FeatureFlag{features.Test}, nil))
	require.NoError(t, err)
	assert.Contains(t, string(withoutLint), "runSequence(\n        ['mocha', 'karma'],")
	assert.NotContains(t, string(withoutLint), "'lint'")
}

func TestRenderGulpfileUsesTaskDir(t *testing.T) {
	r := NewRenderer()
	rf := planner.NewResolvedFlags([]features.FeatureFlag{features.Lint}, nil, "")

	out, err := r.Render("gulpfile.js", NewContext("app", "build", rf, planner.PlanArtifacts(rf)))
	require.NoError(t, err)
	assert.Contains(t, string(out), "requireDir('./build/tasks'")
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		id   features.TemplateID
	}{
		{
			name: "missing template",
			fsys: fstest.MapFS{},
			id:   "tasks/nope.js",
		},
		{
			name: "parse failure",
			fsys: fstest.MapFS{"bad.js": {Data: []byte("{{ if }}")}},
			id:   "bad.js",
		},
		{
			name: "unknown field",
			fsys: fstest.MapFS{"field.js": {Data: []byte("{{ .Nope }}")}},
			id:   "field.js",
		},
		{
			name: "unknown function",
			fsys: fstest.MapFS{"func.js": {Data: []byte("{{ nope .AppName }}")}},
			id:   "func.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRendererFS(tt.fsys).Render(tt.id, Context{})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrTemplate))
		})
	}
}

func TestJSHelpers(t *testing.T) {
	assert.Equal(t, "'it\\'s'", jsString("it's"))
	assert.Equal(t, "'a\\\\b'", jsString(`a\b`))
	assert.Equal(t, "[]", jsArray([]string{}))
	assert.Equal(t, "['']", jsArray([]string{""}))
	assert.Equal(t, "['a', 'b']", jsArray([]string{"a", "b"}))
}
