package detect

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/liveout/pkg/config"
)

// clearShellEnv removes the notebook and hosted markers so detection
// starts from a clean slate. t.Setenv registers the restore.
func clearShellEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"JPY_PARENT_PID", "JPY_SESSION_NAME", "COLAB_RELEASE_TAG", "COLAB_JUPYTER_IP"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func runDetect(t *testing.T, ctx context.Context, args ...string) string {
	t.Helper()
	cmd := NewCommand()
	if ctx != nil {
		cmd.SetContext(ctx)
	}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestDetectReportsNotebook(t *testing.T) {
	clearShellEnv(t)
	t.Setenv("JPY_PARENT_PID", "4242")

	out := runDetect(t, nil)

	assert.Contains(t, out, "shell:   notebook")
	assert.Contains(t, out, "backend: notebook")
}

func TestDetectReportsHosted(t *testing.T) {
	clearShellEnv(t)
	t.Setenv("COLAB_RELEASE_TAG", "release-colab-20260801")

	out := runDetect(t, nil)

	assert.Contains(t, out, "shell:   hosted")
	assert.Contains(t, out, "backend: hosted")
}

func TestDetectFallsBackToCli(t *testing.T) {
	clearShellEnv(t)

	out := runDetect(t, nil)

	assert.Contains(t, out, "backend: cli")
}

func TestDetectExplainShowsFacts(t *testing.T) {
	clearShellEnv(t)
	t.Setenv("JPY_SESSION_NAME", "analysis.ipynb")

	out := runDetect(t, nil, "--explain")

	assert.Contains(t, out, "Marker")
	assert.Contains(t, out, "session name")
	assert.Contains(t, out, "analysis.ipynb")
	assert.Contains(t, out, "stdout tty")
}

func TestDetectNotesConfiguredBackend(t *testing.T) {
	clearShellEnv(t)

	ctx := config.NewContext(context.Background(), &config.Settings{Backend: "silent"})
	out := runDetect(t, ctx)

	assert.Contains(t, out, "configured: silent (overrides detection)")
}

func TestDetectWithoutConfigSkipsNote(t *testing.T) {
	clearShellEnv(t)

	out := runDetect(t, nil)

	assert.NotContains(t, out, "configured:")
}
