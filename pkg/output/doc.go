// Package output renders command results.
//
// Terminal output is styled with lipgloss; text output is the same layout
// without color. JSON and YAML emit the result structures directly for
// scripts. The auto format picks term or text from the destination.
package output
