package display_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/liveout/pkg/backend"
	"github.com/arthur-debert/liveout/pkg/display"
	"github.com/arthur-debert/liveout/pkg/errors"
	"github.com/arthur-debert/liveout/pkg/surface"
)

func TestNewSession_ByIdentifier(t *testing.T) {
	s, err := display.NewSession("cli")
	require.NoError(t, err)
	assert.Equal(t, "cli", s.Backend().ID())
}

func TestNewSession_InstancePassesThrough(t *testing.T) {
	nb := backend.NewNotebook(surface.NewMemory())

	s, err := display.NewSession(nb)
	require.NoError(t, err)
	assert.Same(t, nb, s.Backend())
}

func TestNewSession_VerboseFalseForcesSilent(t *testing.T) {
	s, err := display.NewSession("notebook", display.WithVerbose(false))
	require.NoError(t, err)
	assert.Equal(t, "silent", s.Backend().ID())

	// Even a selector error is moot when muted.
	muted, err := display.NewSession(42, display.WithVerbose(false))
	require.NoError(t, err)
	assert.Equal(t, "silent", muted.Backend().ID())
}

func TestNewSession_SelectorErrorsPropagate(t *testing.T) {
	_, err := display.NewSession("curses")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackendUnknown))

	_, err = display.NewSession(3.14)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSelectorType))
}

func TestNewSession_WithRegistry(t *testing.T) {
	s, err := display.NewSession("hosted", display.WithRegistry(backend.NewRegistry()))
	require.NoError(t, err)
	assert.Equal(t, "hosted", s.Backend().ID())
}

func TestSession_OperationsReachBackend(t *testing.T) {
	mem := surface.NewMemory()
	s, err := display.NewSession(backend.NewNotebook(mem))
	require.NoError(t, err)

	s.Show("current")
	assert.Equal(t, "current", mem.Slot(0))

	s.ClearDisplay()
	assert.Nil(t, mem.Slot(0))

	s.ClearOutput()
	assert.Equal(t, 1, mem.Clears())
}

func TestSession_MonitorUpdatesInPlace(t *testing.T) {
	mem := surface.NewMemory()
	s, err := display.NewSession(backend.NewNotebook(mem))
	require.NoError(t, err)

	m := display.NewMonitor("Initiated", "Status", "Step")
	m.Set("Status", "Loading")
	s.Show(m.Table())

	m.Set("Status", "Fitting").Set("Step", "3/10")
	s.Show(m.Table())

	require.Equal(t, 1, mem.Reserves(), "one slot for the whole panel")
	current := mem.Slot(0)
	require.NotNil(t, current)
	text := current.(fmt.Stringer).String()
	assert.Contains(t, text, "Fitting")
	assert.Contains(t, text, "3/10")
	assert.NotContains(t, text, "Loading")
}

func TestSession_TerminalEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	nb := backend.NewNotebook(surface.NewTerminal(&buf))
	s, err := display.NewSession(nb)
	require.NoError(t, err)

	m := display.NewMonitor("Status")
	m.Set("Status", "Loading")
	s.Show(m.Table())
	first := buf.String()
	assert.Contains(t, first, "Loading")

	buf.Reset()
	m.Set("Status", "Done")
	s.Show(m.Table())
	second := buf.String()

	// The repaint rewinds over the previous panel instead of
	// appending a second one.
	assert.Contains(t, second, "\x1b[2K")
	assert.Contains(t, second, "Done")
	assert.NotContains(t, second, "Loading")
}
