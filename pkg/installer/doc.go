// Package installer installs the planned npm packages into the target
// project with a single batched call to npm, yarn or pnpm.
package installer
