package features

import (
	"github.com/arthur-debert/gulps/pkg/errors"
)

// FeatureFlag selects one optional gulp task and its generated module.
type FeatureFlag string

// Feature flags in canonical declaration order.
const (
	Lint       FeatureFlag = "lint"
	Serve      FeatureFlag = "serve"
	Browserify FeatureFlag = "browserify"
	Release    FeatureFlag = "release"
	Changelog  FeatureFlag = "changelog"
	Test       FeatureFlag = "test"
	Style      FeatureFlag = "style"
)

// PlatformFlag selects a third-party UI platform. It only feeds the
// stylesheet and font lists interpolated into the constants template.
type PlatformFlag string

// Platform flags.
const (
	Ionic       PlatformFlag = "ionic"
	Famous      PlatformFlag = "famous"
	FontAwesome PlatformFlag = "fontawesome"
	Bootstrap   PlatformFlag = "bootstrap"
)

var allFeatures = []FeatureFlag{Lint, Serve, Browserify, Release, Changelog, Test, Style}

var allPlatforms = []PlatformFlag{Ionic, Famous, FontAwesome, Bootstrap}

// AllFeatures returns every FeatureFlag in canonical order.
func AllFeatures() []FeatureFlag {
	out := make([]FeatureFlag, len(allFeatures))
	copy(out, allFeatures)
	return out
}

// AllPlatforms returns every PlatformFlag in declaration order.
func AllPlatforms() []PlatformFlag {
	out := make([]PlatformFlag, len(allPlatforms))
	copy(out, allPlatforms)
	return out
}

// Index returns the canonical position of f, or -1 if f is not a known flag.
func (f FeatureFlag) Index() int {
	for i, known := range allFeatures {
		if known == f {
			return i
		}
	}
	return -1
}

// Valid reports whether f belongs to the closed FeatureFlag set.
func (f FeatureFlag) Valid() bool {
	return f.Index() >= 0
}

func (f FeatureFlag) String() string { return string(f) }

// Valid reports whether p belongs to the closed PlatformFlag set.
func (p PlatformFlag) Valid() bool {
	for _, known := range allPlatforms {
		if known == p {
			return true
		}
	}
	return false
}

func (p PlatformFlag) String() string { return string(p) }

// ParseFeature converts a task name into a FeatureFlag.
func ParseFeature(name string) (FeatureFlag, error) {
	f := FeatureFlag(name)
	if !f.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown task %q", name).
			WithDetail("known", Names())
	}
	return f, nil
}

// ParsePlatform converts a platform name into a PlatformFlag.
func ParsePlatform(name string) (PlatformFlag, error) {
	p := PlatformFlag(name)
	if !p.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown platform %q", name)
	}
	return p, nil
}

// Names returns the task names in canonical order.
func Names() []string {
	names := make([]string, len(allFeatures))
	for i, f := range allFeatures {
		names[i] = string(f)
	}
	return names
}
