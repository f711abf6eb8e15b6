package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/liveout/pkg/display"
)

func TestMonitor_FieldsKeepOrder(t *testing.T) {
	m := display.NewMonitor("Initiated", "Status", "Step")
	assert.Equal(t, []string{"Initiated", "Status", "Step"}, m.Fields())

	m.Set("Estimator", "rf")
	assert.Equal(t, []string{"Initiated", "Status", "Step", "Estimator"}, m.Fields())
}

func TestMonitor_SetAndGet(t *testing.T) {
	m := display.NewMonitor("Status")
	assert.Equal(t, "", m.Get("Status"))

	m.Set("Status", "Loading")
	assert.Equal(t, "Loading", m.Get("Status"))

	m.Set("Status", "Fitting")
	assert.Equal(t, "Fitting", m.Get("Status"), "set replaces, not appends")
}

func TestMonitor_Table(t *testing.T) {
	m := display.NewMonitor("Initiated", "Status")
	m.Set("Initiated", "12:30:01")
	m.Set("Status", "Loading")

	tbl := m.Table()
	require.Equal(t, 2, tbl.Rows())
	require.Equal(t, 2, tbl.Cols())
	assert.Equal(t, "Initiated", tbl.Cell(0, 0))
	assert.Equal(t, "12:30:01", tbl.Cell(0, 1))
	assert.Equal(t, "Status", tbl.Cell(1, 0))
	assert.Equal(t, "Loading", tbl.Cell(1, 1))
}

func TestMonitor_TableIsSnapshot(t *testing.T) {
	m := display.NewMonitor("Status")
	m.Set("Status", "before")
	snapshot := m.Table()

	m.Set("Status", "after")

	assert.Equal(t, "before", snapshot.Cell(0, 1))
	assert.Equal(t, "after", m.Table().Cell(0, 1))
}

func TestMonitor_String(t *testing.T) {
	m := display.NewMonitor("Status").Set("Status", "Fitting")
	got := m.String()

	assert.Contains(t, got, "Status")
	assert.Contains(t, got, "Fitting")
}

func TestMonitor_ChainedSets(t *testing.T) {
	m := display.NewMonitor().
		Set("Status", "Loading").
		Set("Step", "1/5")

	assert.Equal(t, []string{"Status", "Step"}, m.Fields())
	assert.Equal(t, "1/5", m.Get("Step"))
}
