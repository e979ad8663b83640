package execx

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests use sh")
	}
}

func TestRunCapturesTrimmedOutput(t *testing.T) {
	requireShell(t)

	out, err := System{}.Run("sh", "-c", "echo '  hello  '; echo oops 1>&2")
	require.NoError(t, err)
	require.True(t, out.Success)
	require.Equal(t, "hello", out.Stdout, "stdout is trimmed")
	require.Equal(t, "oops", out.Stderr, "stderr is captured separately and trimmed")
}

func TestRunNonzeroExitIsAnOutcomeNotAnError(t *testing.T) {
	requireShell(t)

	out, err := System{}.Run("sh", "-c", "echo broken 1>&2; exit 3")
	require.NoError(t, err, "a nonzero exit is a representable outcome")
	require.False(t, out.Success)
	require.Equal(t, "broken", out.Stderr)
}

func TestRunLaunchFailureIsAnError(t *testing.T) {
	_, err := System{}.Run("definitely-not-a-real-binary-quack")
	require.Error(t, err, "a missing binary is a launch failure, not an outcome")
}
