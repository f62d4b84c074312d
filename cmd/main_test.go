package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BACKEND_MODE", "mock")
	t.Setenv("MOCK_LATENCY", "0s")
	t.Setenv("MOCK_FAILURE_MODE", "none")
	t.Setenv("MOCK_ID_STRATEGY", "sequence")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String(), errOut.String()
}

func TestPatientsDelete_MockModeSaysChangesAreNotKept(t *testing.T) {
	mockEnv(t)

	out, errOut := execute(t, patientsCmd(), "delete", "2")
	assert.Contains(t, out, "Patient deleted successfully")
	assert.Contains(t, errOut, "changes are not kept between commands")

	// A second invocation starts from the seed again.
	out, _ = execute(t, patientsCmd(), "get", "2")
	assert.Contains(t, out, "Sarah Johnson")
}

func TestAppointmentsStatus_MockModeSaysChangesAreNotKept(t *testing.T) {
	mockEnv(t)

	out, errOut := execute(t, appointmentsCmd(), "status", "3", "confirmed")
	assert.Contains(t, out, `"status": "confirmed"`)
	assert.Equal(t, mockChangesNotice, errOut)
}

func TestReadCommands_NoNotice(t *testing.T) {
	mockEnv(t)

	_, errOut := execute(t, doctorsCmd(), "get", "1")
	assert.Empty(t, errOut)
}

func TestMutatingCommandsMentionMockModeInHelp(t *testing.T) {
	for _, c := range []*cobra.Command{patientsCmd(), appointmentsCmd()} {
		for _, sub := range c.Commands() {
			if sub.Name() == "delete" || sub.Name() == "status" {
				assert.Contains(t, sub.Short, "mock mode: not kept", sub.CommandPath())
			}
		}
	}
}
