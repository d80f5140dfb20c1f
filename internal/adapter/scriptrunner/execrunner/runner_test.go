package execrunner_test

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cradium/internal/adapter/scriptrunner/execrunner"
	"cradium/internal/domain/crafting"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunCapturesOutput(t *testing.T) {
	requireShell(t)
	runner := execrunner.New("sh", time.Minute)

	out, err := runner.Run(context.Background(), "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunReportsScriptFailure(t *testing.T) {
	requireShell(t)
	runner := execrunner.New("sh", time.Minute)

	out, err := runner.Run(context.Background(), "echo oops >&2; exit 3")
	require.ErrorIs(t, err, crafting.ErrScriptFailure)
	assert.Contains(t, out, "oops")
}

func TestRunTimesOut(t *testing.T) {
	requireShell(t)
	runner := execrunner.New("sh", 100*time.Millisecond)

	start := time.Now()
	_, err := runner.Run(context.Background(), "sleep 5")
	require.ErrorIs(t, err, crafting.ErrScriptFailure)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestDefaultsApplied(t *testing.T) {
	runner := execrunner.New("", 0)
	assert.Equal(t, "sh", runner.Interpreter)
	assert.Equal(t, execrunner.DefaultTimeout, runner.Timeout)
}
