package guide

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidePrintsContent(t *testing.T) {
	cmd := NewCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "liveout")
	assert.Contains(t, out, "backend")
}

func TestRenderMarkdownWithoutWrap(t *testing.T) {
	out := renderMarkdown("# heading\n\nbody text\n", 0)
	assert.Contains(t, out, "body text")
}
