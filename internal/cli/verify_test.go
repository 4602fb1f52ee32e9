package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfcustody/ksigner/internal/errors"
)

func TestVerifyCommand_Flags(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	root := newRootCmd(flags, BuildInfo{})
	cmd := findSubcommand(t, root, "verify")

	fileFlag := cmd.Flags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)

	sigFlag := cmd.Flags().Lookup("sig-file")
	require.NotNil(t, sigFlag)
	assert.Equal(t, "s", sigFlag.Shorthand)

	pubFlag := cmd.Flags().Lookup("pub-file")
	require.NotNil(t, pubFlag)
	assert.Equal(t, "p", pubFlag.Shorthand)
}

func TestVerifyCommand_RequiresAllInputs(t *testing.T) {
	_, err := executeCommand(t, "verify", "--file", "doc.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestVerifyCommand_MissingToolSurfacesTaxonomy(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(docPath, []byte("payload"), 0o600))

	// Point the tool at a binary name that cannot exist on PATH.
	t.Setenv("KSIGNER_VERIFY_OPENSSL_BINARY", "openssl-definitely-not-installed")

	_, err := executeCommand(t, "verify",
		"--file", docPath,
		"--sig-file", docPath+".sig",
		"--pub-file", filepath.Join(dir, "pubkey.pem"),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrExternalTool)
	assert.Equal(t, ExitError, ExitCodeForError(err))
}

func TestVerifyCommand_HelpShowsPipeline(t *testing.T) {
	output, err := executeCommand(t, "verify", "--help")

	require.NoError(t, err)
	assert.Contains(t, output, "pkeyutl")
	assert.Contains(t, output, "sha256")
}
