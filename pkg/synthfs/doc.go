// Package synthfs writes generated files into the target project.
//
// Operations are converted into a github.com/arthur-debert/synthfs pipeline
// and run against an OS filesystem rooted at "/", so every target must be
// absolute and inside the project root the executor was created for.
// Existing files are detected through types.FS before the pipeline is built:
// they are skipped unless force is on, in which case they are removed and
// rewritten. In dry-run mode operations are logged and nothing is touched.
package synthfs
