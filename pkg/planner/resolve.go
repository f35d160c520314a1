package planner

import (
	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/features"
)

// DirectFlags holds the flags the caller supplied explicitly. A flag that was
// not supplied must be absent from the maps, not present with false.
type DirectFlags struct {
	Features  map[features.FeatureFlag]bool
	Platforms map[features.PlatformFlag]bool
}

// HasTaskOption reports whether any task flag was passed directly as true.
// When it holds, the Tasks prompt is skipped for every task, not only the
// ones supplied.
func (d DirectFlags) HasTaskOption() bool {
	for _, v := range d.Features {
		if v {
			return true
		}
	}
	return false
}

// Answers is the subset of prompt answers the planner reads.
type Answers struct {
	Tasks      []string
	Repository string
}

// ResolvedFlags is the write-once result of flag resolution.
type ResolvedFlags struct {
	features   map[features.FeatureFlag]bool
	platforms  map[features.PlatformFlag]bool
	repository string
}

// NewResolvedFlags builds a ResolvedFlags from explicit selections.
func NewResolvedFlags(enabled []features.FeatureFlag, platforms []features.PlatformFlag, repository string) ResolvedFlags {
	r := ResolvedFlags{
		features:   make(map[features.FeatureFlag]bool, len(enabled)),
		platforms:  make(map[features.PlatformFlag]bool, len(platforms)),
		repository: repository,
	}
	for _, f := range enabled {
		r.features[f] = true
	}
	for _, p := range platforms {
		r.platforms[p] = true
	}
	return r
}

// ResolveFlags merges direct flags with prompt answers. answers may be nil
// when the prompt was skipped.
//
// A task supplied directly keeps its direct value; any other task is enabled
// when its name appears in answers.Tasks. Platforms only come from direct
// flags.
func ResolveFlags(direct DirectFlags, answers *Answers) (ResolvedFlags, error) {
	for f := range direct.Features {
		if !f.Valid() {
			return ResolvedFlags{}, errors.Newf(errors.ErrInvalidInput, "unknown task %q", f)
		}
	}

	selected := map[features.FeatureFlag]bool{}
	repository := ""

	if answers != nil {
		for _, name := range answers.Tasks {
			f, err := features.ParseFeature(name)
			if err != nil {
				return ResolvedFlags{}, err
			}
			selected[f] = true
		}
		repository = answers.Repository
	}

	var enabled []features.FeatureFlag
	for _, f := range features.AllFeatures() {
		value, supplied := direct.Features[f]
		if !supplied {
			value = selected[f]
		}
		if value {
			enabled = append(enabled, f)
		}
	}

	var platforms []features.PlatformFlag
	for p, value := range direct.Platforms {
		if !p.Valid() {
			return ResolvedFlags{}, errors.Newf(errors.ErrInvalidInput, "unknown platform %q", p)
		}
		if value {
			platforms = append(platforms, p)
		}
	}

	return NewResolvedFlags(enabled, platforms, repository), nil
}

// Enabled reports whether task f resolved to true.
func (r ResolvedFlags) Enabled(f features.FeatureFlag) bool {
	return r.features[f]
}

// Platform reports whether platform p resolved to true.
func (r ResolvedFlags) Platform(p features.PlatformFlag) bool {
	return r.platforms[p]
}

// Repository returns the repository URL answer, if any.
func (r ResolvedFlags) Repository() string {
	return r.repository
}

// Tasks returns the enabled tasks in canonical order.
func (r ResolvedFlags) Tasks() []features.FeatureFlag {
	var out []features.FeatureFlag
	for _, f := range features.AllFeatures() {
		if r.features[f] {
			out = append(out, f)
		}
	}
	return out
}

// Platforms returns the enabled platforms in declaration order.
func (r ResolvedFlags) Platforms() []features.PlatformFlag {
	var out []features.PlatformFlag
	for _, p := range features.AllPlatforms() {
		if r.platforms[p] {
			out = append(out, p)
		}
	}
	return out
}

// NothingSelected reports the "nothing to do" short-circuit: no task is
// enabled, so there is nothing to render or install.
func (r ResolvedFlags) NothingSelected() bool {
	return len(r.Tasks()) == 0
}
