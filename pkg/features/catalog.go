package features

import "path"

// TemplateID names a template inside the embedded template tree.
type TemplateID string

// Template pairs a template with the path it is rendered to, relative to the
// target project.
type Template struct {
	ID   TemplateID `json:"id" yaml:"id" toml:"id"`
	Dest string     `json:"dest" yaml:"dest" toml:"dest"`
}

// Note is a single post-install hint: the command to run and what it does.
type Note struct {
	Command string
	Purpose string
}

// TaskDir is the directory, relative to the project, that holds task modules.
const TaskDir = "gulp"

// BaseTemplates are emitted for every non-empty plan, ahead of the task modules.
var BaseTemplates = []Template{
	{ID: "gulpfile.js", Dest: "gulpfile.js"},
	{ID: "common/constants.js", Dest: path.Join(TaskDir, "common", "constants.js")},
}

// BasePackages are installed for every non-empty plan.
var BasePackages = []string{
	"gulp",
	"gulp-help",
	"gulp-util",
	"gulp-load-plugins",
	"require-dir",
	"run-sequence",
}

var templateFor = map[FeatureFlag]Template{
	Lint:       taskTemplate(Lint),
	Serve:      taskTemplate(Serve),
	Browserify: taskTemplate(Browserify),
	Release:    taskTemplate(Release),
	Changelog:  taskTemplate(Changelog),
	Test:       taskTemplate(Test),
	Style:      taskTemplate(Style),
}

var packagesFor = map[FeatureFlag][]string{
	Lint: {
		"map-stream",
		"stream-combiner",
		"chalk",
		"growly",
		"lodash",
		"gulp-jshint",
		"gulp-jscs",
		"gulp-eslint",
		"gulp-plumber",
	},
	Serve: {
		"gulp-webserver",
		"browser-sync",
		"open",
		"chalk",
	},
	Browserify: {
		"vinyl-source-stream",
		"browserify",
		"watchify",
		"chalk",
	},
	Release: {
		"yargs",
		"strip-json-comments",
		"gulp-bump",
		"gulp-git",
		"gulp-if",
	},
	Changelog: {
		"conventional-changelog",
		"yargs",
		"marked",
		"q",
		"gulp-exec",
		"gulp-concat",
		"streamqueue",
	},
	Test: {
		"lodash",
		"gulp-mocha",
		"gulp-istanbul",
		"gulp-plumber",
		"chalk",
		"gulp-karma",
		"mocha",
		"mocha-lcov-reporter",
		"sinon",
		"chai",
		"gulp-protractor",
	},
	Style: {
		"event-stream",
		"gulp-sass",
		"gulp-sourcemaps",
		"gulp-autoprefixer",
		"gulp-minify-css",
		"gulp-rename",
		"gulp-concat",
		"gulp-size",
	},
}

var notesFor = map[FeatureFlag][]Note{
	Lint: {{Command: "gulp lint", Purpose: "to lint your files."}},
	Serve: {
		{Command: "gulp serve", Purpose: "to launch a live reload server."},
		{Command: "gulp browsersync", Purpose: "to launch a browsersync server."},
	},
	Browserify: {{Command: "gulp browserify", Purpose: "to create a browserify bundle."}},
	Release:    {{Command: "gulp release", Purpose: "to increment version and publish to npm."}},
	Changelog:  {{Command: "gulp changelog", Purpose: "to create a CHANGELOG.md file."}},
	Test:       {{Command: "gulp test", Purpose: "to run the tests."}},
	Style:      {{Command: "gulp sass", Purpose: "to compile sass file."}},
}

var descriptions = map[FeatureFlag]string{
	Lint:       "Lint scripts with jshint, jscs and eslint",
	Serve:      "Live reload and browsersync development servers",
	Browserify: "Bundle scripts with browserify and watchify",
	Release:    "Bump versions, tag and push a release",
	Changelog:  "Generate CHANGELOG.md from conventional commits",
	Test:       "Run mocha and karma unit tests with coverage",
	Style:      "Compile sass with sourcemaps and autoprefixer",
}

// Stylesheet references contributed by platforms, in evaluation order.
var cssFor = map[PlatformFlag][]string{
	Famous: {"./bower_components/famous-angular/dist/famous-angular.css"},
	Bootstrap: {
		"./bower_components/bootstrap/dist/bootstrap.css",
		"./bower_components/bootstrap/dist/bootstrap-theme.css",
	},
}

// Font globs contributed by platforms.
var fontsFor = map[PlatformFlag]string{
	Ionic:       "./bower_components/ionic/release/fonts/*.*",
	FontAwesome: "./bower_components/font-awesome/fonts/*.*",
	Bootstrap:   "./bower_components/bootstrap/dist/fonts/*.*",
}

// CSSOrder is the order in which platforms contribute stylesheet references.
var CSSOrder = []PlatformFlag{Famous, Bootstrap}

// FontOrder is the order in which platforms contribute font globs.
var FontOrder = []PlatformFlag{Ionic, FontAwesome, Bootstrap}

func taskTemplate(f FeatureFlag) Template {
	return Template{
		ID:   TemplateID(path.Join("tasks", string(f)+".js")),
		Dest: path.Join(TaskDir, "tasks", string(f)+".js"),
	}
}

// TemplateFor returns the task template for f.
func TemplateFor(f FeatureFlag) (Template, bool) {
	t, ok := templateFor[f]
	return t, ok
}

// PackagesFor returns a copy of the npm packages f needs.
func PackagesFor(f FeatureFlag) []string {
	pkgs := packagesFor[f]
	out := make([]string, len(pkgs))
	copy(out, pkgs)
	return out
}

// NotesFor returns the post-install notes for f in emission order.
func NotesFor(f FeatureFlag) []Note {
	notes := notesFor[f]
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

// DescriptionFor returns the catalogue summary for f.
func DescriptionFor(f FeatureFlag) string {
	return descriptions[f]
}

// CSSFor returns the stylesheet references p contributes.
func CSSFor(p PlatformFlag) []string {
	refs := cssFor[p]
	out := make([]string, len(refs))
	copy(out, refs)
	return out
}

// FontFor returns the font glob p contributes, if any.
func FontFor(p PlatformFlag) (string, bool) {
	g, ok := fontsFor[p]
	return g, ok
}
