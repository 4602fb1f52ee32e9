package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

func TestHashFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty file", content: []byte{}},
		{name: "ascii content", content: []byte("hello world\n")},
		{name: "binary content", content: []byte{0x00, 0xff, 0x10, 0x80, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "input.bin")
			require.NoError(t, os.WriteFile(path, tt.content, 0o600))

			got, err := HashFile(path)
			require.NoError(t, err)

			// Oracle: the standard library digest of the same bytes.
			want := sha256.Sum256(tt.content)
			assert.Equal(t, hex.EncodeToString(want[:]), got)
			assert.Len(t, got, 64)
			assert.Equal(t, got, string([]byte(got))) // lowercase hex only
		})
	}
}

func TestHashFile_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := []byte("same bytes, different names")

	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "renamed.dat")
	require.NoError(t, os.WriteFile(pathA, content, 0o600))
	require.NoError(t, os.WriteFile(pathB, content, 0o600))

	digestA, err := HashFile(pathA)
	require.NoError(t, err)
	digestB, err := HashFile(pathB)
	require.NoError(t, err)

	// Digest depends only on content, never on the file name.
	assert.Equal(t, digestA, digestB)
}

func TestHashFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := HashFile(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ksignererrors.ErrFileNotFound)
}

func TestWriteRecord(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("document"), 0o600))

	fileDigest, err := HashFile(path)
	require.NoError(t, err)
	require.NoError(t, WriteRecord(path, fileDigest))

	recorded, err := os.ReadFile(RecordPath(path))
	require.NoError(t, err)
	assert.Equal(t, fileDigest+" "+path, string(recorded))
}

func TestWriteRecord_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, WriteRecord(path, "old-digest"))
	require.NoError(t, WriteRecord(path, "new-digest"))

	recorded, err := os.ReadFile(RecordPath(path))
	require.NoError(t, err)
	assert.Equal(t, "new-digest "+path, string(recorded))
}

func TestRecordPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "doc.txt.sha256sum.txt", RecordPath("doc.txt"))
}
