package gulps

import "embed"

//go:embed topics/*.md
var topicFiles embed.FS
