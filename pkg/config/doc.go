// Package config loads the gulps configuration.
//
// Configuration is layered with koanf. Later layers win:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config, $XDG_CONFIG_HOME/gulps/config.toml
//  3. the project config, .gulps.toml or .gulps.yaml in the target directory
//  4. an explicit file passed with --config
//  5. GULPS_* environment variables
//  6. programmatic overrides, used by command-line flags
//
// The merged tree is decoded into Config with mapstructure, then validated.
package config
