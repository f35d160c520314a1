package generator

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/gulps/pkg/types"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type packageJSON struct {
	Name string `json:"name"`
}

// AppName derives the application name for dir: the package.json name when
// there is one, else the directory name. The result is a lowercase slug.
func AppName(fsys types.FS, dir string) string {
	name := filepath.Base(filepath.Clean(dir))

	if data, err := fsys.ReadFile(filepath.Join(dir, "package.json")); err == nil {
		var pkg packageJSON
		if json.Unmarshal(data, &pkg) == nil && pkg.Name != "" {
			name = pkg.Name
		}
	}

	if slug := Slugify(Humanize(name)); slug != "" {
		return slug
	}
	return "app"
}

// Humanize turns identifiers such as "myApp_name" into "My app name".
func Humanize(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), "_id")

	var b strings.Builder
	prev := rune(0)
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			r = ' '
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			b.WriteRune(' ')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}

	out := strings.Join(strings.Fields(b.String()), " ")
	if out == "" {
		return ""
	}
	first := []rune(out)
	first[0] = unicode.ToUpper(first[0])
	return string(first)
}

// Slugify lowercases s, strips accents and joins the remaining words with
// dashes.
func Slugify(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
