// Package paths resolves the raw paths authored in a dotctl configuration
// document into absolute filesystem paths.
//
// A raw path is one of three things:
//
//   - absolute: returned unchanged
//   - home relative ("~/..."): joined onto the user's home directory
//   - relative: joined onto a parent directory, which may itself be home
//     relative and is resolved again
//
// Link sources resolve against the repository root. Link targets have no
// implicit parent, so a relative target is an error.
//
// # Usage
//
//	r := paths.NewResolver(nil) // uses the process home directory
//	src, err := r.ResolveSource("zsh/zshrc", "~/dotfiles")
//	// src == /home/user/dotfiles/zsh/zshrc
//	dst, err := r.ResolveTarget("~/.zshrc")
//	// dst == /home/user/.zshrc
package paths
