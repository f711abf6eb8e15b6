package backend

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/liveout/pkg/logging"
	"github.com/arthur-debert/liveout/pkg/surface"
	"github.com/arthur-debert/liveout/pkg/types"
)

// Notebook drives one updatable slot on a notebook-style surface:
// repeated displays overwrite the slot instead of appending. The
// hosted variant is the same machinery with a different prepare step,
// so both are this struct.
type Notebook struct {
	id      string
	surface types.Surface
	handle  types.Handle
	prepare func(any) any
	log     zerolog.Logger
}

var _ types.Backend = (*Notebook)(nil)

// NewNotebook returns the notebook backend on the given surface. A nil
// surface falls back to a terminal block surface on stdout.
func NewNotebook(s types.Surface) *Notebook {
	return &Notebook{
		id:      IDNotebook,
		surface: orStdoutSurface(s),
		prepare: normalizeNotebook,
		log:     logging.GetLogger("backend.notebook"),
	}
}

// NewHosted returns the hosted backend on the given surface. A nil
// surface falls back to a terminal block surface on stdout.
func NewHosted(s types.Surface) *Notebook {
	return &Notebook{
		id:      IDHosted,
		surface: orStdoutSurface(s),
		prepare: normalizeHosted,
		log:     logging.GetLogger("backend.hosted"),
	}
}

func orStdoutSurface(s types.Surface) types.Surface {
	if s != nil {
		return s
	}
	return surface.NewTerminal(os.Stdout)
}

func (n *Notebook) ID() string    { return n.id }
func (*Notebook) CanUpdate() bool { return true }

// Display reserves the output slot on first use, then pushes the
// prepared value into it. The reservation happens exactly once per
// instance, whatever the value; a prepare result of nil leaves the
// slot showing what it already shows.
func (n *Notebook) Display(v any) {
	if n.handle == nil {
		n.handle = n.surface.Reserve()
		n.log.Debug().Str("backend", n.id).Msg("output handle reserved")
	}

	prepared := n.prepare(v)
	if prepared == nil {
		return
	}
	n.handle.Update(prepared)
}

// ClearDisplay blanks the slot while keeping it reserved. Before the
// first Display there is no slot and nothing happens.
func (n *Notebook) ClearDisplay() {
	if n.handle != nil {
		n.handle.Update(nil)
	}
}

// ClearOutput clears the whole surface, whether or not a slot was
// ever reserved. The surface contract makes the clear synchronous, so
// a following Display cannot race it.
func (n *Notebook) ClearOutput() {
	n.surface.Clear()
}
