// Package testutil provides utilities for testing dotctl components.
//
// Key components:
//   - TestEnvironment: an isolated HOME and dotfiles repository under
//     t.TempDir(), with HOME and the XDG variables pointed at it
//   - NewMemoryFS: an afero-backed in-memory types.FS for tests that only
//     touch files and directories
//   - WriteTree / ReadTree: declarative fixture trees
//
// Usage guidelines:
//   - Tests that create symlinks or hard links need EnvIsolated; MemoryFS
//     has no link support
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
