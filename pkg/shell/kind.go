package shell

// Kind classifies the host environment.
type Kind int

const (
	// KindNone means no interactive surface was found.
	KindNone Kind = iota

	// KindTerminal means stdout is attached to a terminal.
	KindTerminal

	// KindNotebook means the process runs under an interactive
	// notebook kernel with full display capabilities.
	KindNotebook

	// KindHosted means the process runs under a hosted notebook
	// service whose display surface accepts markup but cannot run
	// native renderers.
	KindHosted
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNotebook:
		return "notebook"
	case KindHosted:
		return "hosted"
	default:
		return "none"
	}
}

// Info describes the detected host environment.
type Info struct {
	Kind Kind

	// Name is a human-readable descriptor: the kernel session name
	// for notebooks, the TERM value for terminals. Informational
	// only; selection keys on Kind.
	Name string
}
