// Package status re-derives the state of configured links from the
// filesystem. Nothing is recorded between runs; every answer comes from
// inspecting the source and target paths as they are now.
package status
