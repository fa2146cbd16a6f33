// Package types defines the core types and interfaces used throughout dotctl.
// This includes the configuration records handed to the engine (ConfigSpec,
// LinkSpec, HookSpec) and the FS interface the engine mutates the filesystem
// through.
package types
