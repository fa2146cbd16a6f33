// Package links materializes and removes the links described by a
// configuration entry.
//
// Apply creates the artifact for one resolved source/target pair using one
// of three strategies: a symbolic link, a hard link, or a recursive copy.
// Teardown removes whatever is at a resolved target, checking for a
// symlink before a directory so that removing a link to a directory never
// recurses into the dotfiles repository.
//
// A directory copy that fails midway is not cleaned up: entries copied
// before the failure stay on disk and the returned error carries
// errors.ErrCopyPartial.
package links
