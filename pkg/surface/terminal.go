package surface

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/liveout/pkg/logging"
	"github.com/arthur-debert/liveout/pkg/types"
)

// Terminal renders reserved slots as one contiguous block of lines at
// the current cursor position of an ANSI terminal. Each update rewinds
// the cursor over the block and repaints it, so slot content appears to
// change in place.
//
// A Terminal is meant for single-goroutine use; handles are owned by
// the backend that reserved them and are never shared.
type Terminal struct {
	out *termenv.Output

	// contents holds the current text of each reserved slot, in
	// reservation order.
	contents []string

	// height is the number of lines the block occupied after the
	// last repaint.
	height int

	log zerolog.Logger
}

var _ types.Surface = (*Terminal)(nil)

// NewTerminal returns a Terminal drawing to w. Pass os.Stdout for the
// real screen; a bytes.Buffer captures the exact byte stream.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		out: termenv.NewOutput(w),
		log: logging.GetLogger("surface.terminal"),
	}
}

// Reserve allocates the next slot at the bottom of the block. The slot
// starts blank and keeps its position until the surface is cleared.
func (t *Terminal) Reserve() types.Handle {
	t.contents = append(t.contents, "")
	slot := &terminalSlot{surface: t, index: len(t.contents) - 1}
	t.repaint()
	return slot
}

// Clear erases the visible screen and forgets the painted block. The
// write has hit the underlying writer when Clear returns; reserved
// handles stay valid and the next update repaints them from scratch.
func (t *Terminal) Clear() {
	t.out.ClearScreen()
	for i := range t.contents {
		t.contents[i] = ""
	}
	t.height = 0
}

func (t *Terminal) update(index int, content string) {
	t.contents[index] = content
	t.repaint()
}

// repaint rewinds over the previously painted block and redraws every
// slot. The last line is written without a trailing newline so the
// next repaint can find the block bottom at the cursor.
func (t *Terminal) repaint() {
	if t.height > 0 {
		t.out.ClearLines(t.height - 1)
		t.write("\r")
	}

	lines := t.renderLines()
	t.write(strings.Join(lines, "\n"))
	t.height = len(lines)
}

// renderLines flattens slot contents into screen lines. A blank slot
// still occupies one line so later slots keep their position.
func (t *Terminal) renderLines() []string {
	var lines []string
	for _, content := range t.contents {
		lines = append(lines, strings.Split(content, "\n")...)
	}
	return lines
}

func (t *Terminal) write(s string) {
	if _, err := t.out.WriteString(s); err != nil {
		t.log.Warn().Err(err).Msg("terminal write failed")
	}
}

// terminalSlot addresses one reserved line range of a Terminal block.
type terminalSlot struct {
	surface *Terminal
	index   int
}

var _ types.Handle = (*terminalSlot)(nil)

// Update replaces the slot's text with the rendering of v. A nil value
// blanks the slot.
func (s *terminalSlot) Update(v any) {
	s.surface.update(s.index, renderText(v))
}
