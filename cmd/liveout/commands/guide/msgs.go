package guide

const (
	MsgShort = "Show the liveout usage guide"

	MsgLong = `Render the built-in usage guide: backends, detection, the
library API and configuration, formatted for the terminal.`
)
