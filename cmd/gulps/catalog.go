package gulps

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gulps/pkg/features"
)

// taskCatalogue renders the task and platform catalogue as markdown.
func taskCatalogue() string {
	var b strings.Builder
	b.WriteString("# Tasks\n\n")
	b.WriteString("Every generated project gets `gulpfile.js` and `gulp/common/constants.js`, ")
	b.WriteString("and installs " + codeList(features.BasePackages) + ".\n\n")

	for _, f := range features.AllFeatures() {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", f, features.DescriptionFor(f))
		if tmpl, ok := features.TemplateFor(f); ok {
			fmt.Fprintf(&b, "* File: `%s`\n", tmpl.Dest)
		}
		fmt.Fprintf(&b, "* Flag: `--%s`\n", f)
		fmt.Fprintf(&b, "* Packages: %s\n", codeList(features.PackagesFor(f)))
		for _, n := range features.NotesFor(f) {
			fmt.Fprintf(&b, "* Run `%s` %s\n", n.Command, n.Purpose)
		}
		b.WriteString("\n")
	}

	b.WriteString("# Platforms\n\n")
	for _, p := range features.AllPlatforms() {
		fmt.Fprintf(&b, "## %s\n\n", p)
		fmt.Fprintf(&b, "* Flag: `--%s`\n", p)
		if css := features.CSSFor(p); len(css) > 0 {
			fmt.Fprintf(&b, "* Stylesheets: %s\n", codeList(css))
		}
		if font, ok := features.FontFor(p); ok {
			fmt.Fprintf(&b, "* Fonts: `%s`\n", font)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}
