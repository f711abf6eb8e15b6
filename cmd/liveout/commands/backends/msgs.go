package backends

// Message constants
const (
	MsgShort = "List the registered display backends"
	MsgLong  = `List every registered backend with its id, whether it updates a
reserved output slot in place, and what it does.

The table itself is shown through the selected backend, so running
this with --backend notebook paints it into a live slot.`
	MsgExample = `  liveout backends
  liveout backends --backend silent   # resolves, displays nothing`
)
