// Package config loads the dotctl configuration document.
//
// The document is read with koanf: built-in defaults first, then the YAML
// or TOML file, then DOTCTL_OPTIONS_* environment overrides. Entries are
// then validated and selected by name and platform.
package config
