// Package utils holds small path helpers shared by the CLI and the config
// loader.
package utils
