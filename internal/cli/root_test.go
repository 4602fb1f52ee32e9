package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfcustody/ksigner/internal/errors"
)

// executeCommand runs the root command with the given args and returns
// the combined output and execution error.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep log files and config lookups inside the test sandbox.
	t.Setenv("KSIGNER_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["sign"], "sign command should be registered")
	assert.True(t, names["verify"], "verify command should be registered")
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	output, err := executeCommand(t)

	require.NoError(t, err)
	assert.Contains(t, output, "ksigner")
	assert.Contains(t, output, "sign")
	assert.Contains(t, output, "verify")
}

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	_, err := executeCommand(t, "--output", "yaml")

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCmd_VerboseAndQuietAreExclusive(t *testing.T) {
	_, err := executeCommand(t, "--verbose", "--quiet")

	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := executeCommand(t, "frobnicate")

	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCmd_Version(t *testing.T) {
	output, err := executeCommand(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, output, "test")
}

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{
			name: "full info",
			info: BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-01"},
			want: "1.2.3 (commit: abc1234, built: 2026-01-01)",
		},
		{
			name: "empty info falls back to dev",
			info: BuildInfo{},
			want: "dev (commit: none, built: unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, formatVersion(tt.info))
		})
	}
}

func TestGetLogger_SafeBeforeInit(t *testing.T) {
	t.Parallel()

	// Must not panic even before PersistentPreRunE has run.
	logger := GetLogger()
	logger.Debug().Msg("discarded")
}

func TestRootCmd_SilencesUsage(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	assert.True(t, cmd.SilenceUsage)
}

func TestRootCmd_HelpListsGlobalFlags(t *testing.T) {
	output, err := executeCommand(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, output, "--output")
	assert.Contains(t, output, "--verbose")
	assert.Contains(t, output, "--quiet")
}
