package main

// Short messages (one-liners)
const (
	MsgRootShort    = "Display backends for live command output"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagBackend = "Backend id to display through (silent, cli, notebook, hosted)"
	MsgFlagColor   = "Color mode for styled output (auto, always, never)"

	// Version output
	MsgVersionFormat = "liveout version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"
)

// Long messages
const (
	MsgRootLong = `liveout routes a program's current result to whatever is hosting it:
a terminal gets plain appended prints, a notebook-style host gets a
reserved output slot that repaints in place, and a silent backend
swallows everything.

The same value flows through every backend; only the rendering and
update behavior change.`

	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `Generate a shell completion script for bash, zsh, fish or powershell.

Load it in your shell profile, for example:
  source <(liveout completion bash)`
)
