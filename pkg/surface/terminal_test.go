package surface

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Control sequences the block renderer is expected to emit.
const (
	eraseLine   = "\x1b[2K"
	cursorUp    = "\x1b[1A"
	eraseScreen = "\x1b[2J"
)

func TestTerminal_UpdateRepaintsInPlace(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	h := term.Reserve()

	buf.Reset()
	h.Update("score: 0.91")
	assert.Equal(t, eraseLine+"\r"+"score: 0.91", buf.String())

	buf.Reset()
	h.Update("score: 0.93")
	assert.Equal(t, eraseLine+"\r"+"score: 0.93", buf.String())
}

func TestTerminal_TwoSlotsRepaintTogether(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	a := term.Reserve()
	b := term.Reserve()

	buf.Reset()
	a.Update("alpha")
	assert.Equal(t, eraseLine+cursorUp+eraseLine+"\r"+"alpha\n", buf.String())

	buf.Reset()
	b.Update("beta")
	assert.Equal(t, eraseLine+cursorUp+eraseLine+"\r"+"alpha\nbeta", buf.String())
}

func TestTerminal_ReserveKeepsEarlierSlots(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	a := term.Reserve()
	a.Update("alpha")

	buf.Reset()
	_ = term.Reserve()
	assert.Equal(t, eraseLine+"\r"+"alpha\n", buf.String())
}

func TestTerminal_MultilineSlot(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	h := term.Reserve()

	buf.Reset()
	h.Update("row 1\nrow 2")
	assert.Equal(t, eraseLine+"\r"+"row 1\nrow 2", buf.String())

	// The block is two lines tall now, so the next repaint rewinds
	// over both.
	buf.Reset()
	h.Update("row 1\nrow 2\nrow 3")
	assert.Equal(t, eraseLine+cursorUp+eraseLine+"\r"+"row 1\nrow 2\nrow 3", buf.String())
}

func TestTerminal_NilUpdateBlanksSlot(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	a := term.Reserve()
	b := term.Reserve()
	a.Update("alpha")
	b.Update("beta")

	buf.Reset()
	a.Update(nil)
	assert.Equal(t, eraseLine+cursorUp+eraseLine+"\r"+"\nbeta", buf.String())
}

func TestTerminal_ClearResetsBlock(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	a := term.Reserve()
	b := term.Reserve()
	a.Update("alpha")
	b.Update("beta")

	buf.Reset()
	term.Clear()
	assert.Contains(t, buf.String(), eraseScreen)

	// After a clear the next update paints from scratch, without
	// rewinding over a block that is no longer on screen.
	buf.Reset()
	a.Update("fresh")
	assert.Equal(t, "fresh\n", buf.String())
}

func TestTerminal_ClearIsSynchronous(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	h := term.Reserve()
	h.Update("before")

	term.Clear()
	// The control sequences are in the writer by the time Clear
	// returns; nothing is deferred.
	assert.Contains(t, buf.String(), eraseScreen)

	buf.Reset()
	h.Update("after")
	assert.Equal(t, "after", buf.String())
}
