package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Link a dotfiles repository into your home directory"
	MsgSetupShort     = "Create the links of one or more entries"
	MsgTeardownShort  = "Remove the links of one or more entries"
	MsgStatusShort    = "Show whether each link is in place"
	MsgListShort      = "List the entries of the configuration"
	MsgUseShort       = "Check a configuration document and summarize it"
	MsgGenConfigShort = "Print a starter configuration document"
	MsgVersionShort   = "Print version information"

	// Error messages
	MsgErrNoEntries  = "name at least one entry or pass --all"
	MsgErrAllAndArgs = "--all cannot be combined with entry names"
	MsgErrFileExists = "%s already exists; pass --force to overwrite"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Preview changes without executing them"
	MsgFlagConfig        = "Configuration document (default $DOTCTL_CONFIG or ~/.dotctl)"
	MsgFlagFormat        = "Output format: auto, term, text, json or yaml"
	MsgFlagAll           = "Run every READY entry for this platform"
	MsgFlagIgnoreMissing = "Skip link targets that do not exist"
	MsgFlagSyntax        = "Document syntax: yaml or toml"
	MsgFlagOutput        = "Write to this file instead of stdout"
	MsgFlagForce         = "Overwrite the output file if it exists"

	// Version output
	MsgVersionFormat = "dotctl version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed msgs/teardown-long.txt
	msgTeardownLongRaw string
	MsgTeardownLong    = strings.TrimSpace(msgTeardownLongRaw)
)

// Examples
const (
	MsgSetupExample = `  # Link the shell entry
  dotctl setup shell

  # Link every entry for this platform, showing what would happen
  dotctl setup --all --dry-run`

	MsgTeardownExample = `  # Remove the shell entry's links
  dotctl teardown shell

  # Remove everything, tolerating links that are already gone
  dotctl teardown --all --ignore-missing`

	MsgGenConfigExample = `  dotctl genconfig > ~/.dotctl
  dotctl genconfig --format toml -o dotctl.toml`
)
