package planner

import (
	"maps"
	"slices"

	"github.com/arthur-debert/gulps/pkg/features"
)

// ArtifactPlan is everything a run will produce, computed once and read-only
// afterwards.
type ArtifactPlan struct {
	// Base holds the files every non-empty plan writes ahead of the tasks.
	Base []features.Template `json:"base" yaml:"base" toml:"base"`
	// Templates holds one task module per enabled task, in canonical order.
	Templates []features.Template `json:"templates" yaml:"templates" toml:"templates"`
	// Dependencies is a deduplicated, sorted set of npm package names.
	Dependencies []string `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
	// CSSRefs never comes back empty: with no stylesheet it holds a single
	// "" placeholder, which consumers treat as "no stylesheets".
	CSSRefs []string `json:"css" yaml:"css" toml:"css"`
	// FontGlobs is empty, without placeholder, when no platform adds fonts.
	FontGlobs []string `json:"fonts" yaml:"fonts" toml:"fonts"`
}

// Empty reports whether the plan writes and installs nothing.
func (p ArtifactPlan) Empty() bool {
	return len(p.Templates) == 0
}

// Files returns every template the plan renders, in write order.
func (p ArtifactPlan) Files() []features.Template {
	out := make([]features.Template, 0, len(p.Base)+len(p.Templates))
	out = append(out, p.Base...)
	out = append(out, p.Templates...)
	return out
}

// PlanArtifacts computes the plan for r. It is pure: equal inputs give
// structurally equal plans.
func PlanArtifacts(r ResolvedFlags) ArtifactPlan {
	plan := ArtifactPlan{
		Templates:    []features.Template{},
		Dependencies: []string{},
		CSSRefs:      cssRefs(r),
		FontGlobs:    fontGlobs(r),
	}

	tasks := r.Tasks()
	if len(tasks) == 0 {
		plan.Base = []features.Template{}
		return plan
	}

	plan.Base = slices.Clone(features.BaseTemplates)

	deps := make(map[string]struct{})
	for _, name := range features.BasePackages {
		deps[name] = struct{}{}
	}

	for _, f := range tasks {
		if tmpl, ok := features.TemplateFor(f); ok {
			plan.Templates = append(plan.Templates, tmpl)
		}
		for _, name := range features.PackagesFor(f) {
			deps[name] = struct{}{}
		}
	}

	plan.Dependencies = slices.Sorted(maps.Keys(deps))
	return plan
}

func cssRefs(r ResolvedFlags) []string {
	var refs []string
	for _, p := range features.CSSOrder {
		if r.Platform(p) {
			refs = append(refs, features.CSSFor(p)...)
		}
	}
	if len(refs) == 0 {
		return []string{""}
	}
	return refs
}

func fontGlobs(r ResolvedFlags) []string {
	globs := []string{}
	for _, p := range features.FontOrder {
		if !r.Platform(p) {
			continue
		}
		if g, ok := features.FontFor(p); ok {
			globs = append(globs, g)
		}
	}
	return globs
}
