// Package testutil provides helpers for testing gulps components.
//
// Key components:
//   - Project: a temporary target project with an optional package.json
//   - Isolate: points XDG directories at temp dirs and clears GULPS_* vars
//   - FakeInstaller: records install calls instead of running a package manager
//   - file helpers and assertions built on testify
package testutil
