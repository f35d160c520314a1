// Package types holds the small set of types shared between the generator
// and the packages that touch the filesystem.
package types
