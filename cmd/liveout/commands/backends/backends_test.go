package backends

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/liveout/pkg/backend"
	"github.com/arthur-debert/liveout/pkg/config"
	"github.com/arthur-debert/liveout/pkg/errors"
)

func TestListing(t *testing.T) {
	tbl := listing(backend.Default())

	require.Equal(t, 4, tbl.Rows())
	assert.Equal(t, []string{"ID", "Updates", "Description"}, tbl.Columns())

	// Rows are in identifier order.
	assert.Equal(t, "cli", tbl.Cell(0, 0))
	assert.Equal(t, "no", tbl.Cell(0, 1))
	assert.Equal(t, "notebook", tbl.Cell(2, 0))
	assert.Equal(t, "yes", tbl.Cell(2, 1))
	assert.Equal(t, "silent", tbl.Cell(3, 0))
}

func TestCommandShowsThroughConfiguredBackend(t *testing.T) {
	cmd := NewCommand()
	cmd.SetContext(config.NewContext(context.Background(), &config.Settings{Backend: "silent"}))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

func TestCommandRejectsUnknownBackend(t *testing.T) {
	cmd := NewCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetContext(config.NewContext(context.Background(), &config.Settings{Backend: "curses"}))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackendUnknown))
}
