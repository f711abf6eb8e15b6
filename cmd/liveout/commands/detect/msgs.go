package detect

const (
	MsgShort = "Report which backend environment detection picks"

	MsgLong = `Probe the current shell and print the backend that automatic
detection would choose for it.

Detection looks for Jupyter kernel markers and Google Colab markers in
the environment. A plain terminal, a pipe, or anything unrecognized
falls back to the cli backend. Use --explain to see the raw facts the
decision was based on.`

	MsgExample = `  # Show the detected shell and backend
  liveout detect

  # Include the environment markers behind the decision
  liveout detect --explain`
)
