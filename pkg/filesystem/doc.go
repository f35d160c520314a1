// Package filesystem provides the types.FS implementations: the real OS
// filesystem and an afero-backed one for in-memory tests.
package filesystem
