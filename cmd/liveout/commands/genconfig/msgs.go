package genconfig

const (
	MsgShort = "Generate a liveout config file"

	MsgLong = `Print a liveout.toml template with every setting present but
commented out, showing its default value.

With --write the template is written to the default config location
instead; an existing file is never overwritten. With --effective the
currently resolved settings are printed, after defaults, config file,
environment and flags have been layered.`

	MsgExample = `  # Print the template to stdout
  liveout genconfig

  # Write it to the config directory
  liveout genconfig --write

  # Show what the process actually resolved
  liveout genconfig --effective`
)
