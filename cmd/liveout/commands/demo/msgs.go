package demo

const (
	MsgShort = "Run a simulated job through the configured backend"

	MsgLong = `Simulate a multi-step job and push its progress through the
configured display backend.

Each step emits a progress frame with a monitor panel and per-step
status lines. On an updating backend the frames repaint in place; on
the cli backend they append. When the job finishes the display is
cleared and replaced with a summary table.`

	MsgExample = `  # Four steps with the default pacing
  liveout demo

  # A quick run where the second step fails
  liveout demo --steps 3 --interval 50ms --fail 2`
)
