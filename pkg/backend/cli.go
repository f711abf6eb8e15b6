package backend

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/liveout/pkg/logging"
	"github.com/arthur-debert/liveout/pkg/types"
)

// CLI prints each displayed value to a plain text stream. It keeps no
// state between calls: successive displays append, and neither clear
// operation can take printed text back.
type CLI struct {
	w   io.Writer
	log zerolog.Logger
}

var _ types.Backend = (*CLI)(nil)

// NewCLI returns a backend printing to stdout.
func NewCLI() *CLI {
	return NewCLIWriter(os.Stdout)
}

// NewCLIWriter returns a backend printing to w.
func NewCLIWriter(w io.Writer) *CLI {
	return &CLI{w: w, log: logging.GetLogger("backend.cli")}
}

func (*CLI) ID() string      { return IDCLI }
func (*CLI) CanUpdate() bool { return false }

// Display prints the normalized value. Values that can show themselves
// do so; everything else is printed in structured text form.
func (c *CLI) Display(v any) {
	v = normalizeCLI(v)
	if v == nil {
		return
	}

	if shower, ok := v.(types.Shower); ok {
		shower.Show()
		return
	}

	if _, err := fmt.Fprintf(c.w, "%+v\n", v); err != nil {
		c.log.Warn().Err(err).Msg("print failed")
	}
}

// ClearDisplay is a no-op; a text stream cannot selectively erase
// prior output.
func (*CLI) ClearDisplay() {}

// ClearOutput is a no-op for the same reason.
func (*CLI) ClearOutput() {}
