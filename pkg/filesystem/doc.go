// Package filesystem provides filesystem implementations for dotctl.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used at runtime and an afero-backed filesystem used by
// tests that only need files and directories.
package filesystem
