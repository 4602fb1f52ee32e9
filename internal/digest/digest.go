// Package digest computes and records file digests for signing sessions.
//
// The digest is the only payload that crosses the air gap toward the signing
// device, so the value written to the sidecar record and the value handed to
// the optical channel must be the same in-memory string. Callers achieve this
// by hashing once with HashFile and passing that result to both WriteRecord
// and the QR emitter.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/selfcustody/ksigner/internal/constants"
	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// HashFile computes the SHA-256 digest of the file's raw bytes and returns
// it as a 64-character lowercase hex string. The digest depends only on the
// file content, never on its name or metadata.
//
// Returns ErrFileNotFound when the path does not exist or cannot be read.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path is the user's own file to sign
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", path, ksignererrors.ErrFileNotFound)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// RecordPath returns the sidecar digest record path for the given file
// (e.g. "doc.txt" -> "doc.txt.sha256sum.txt").
func RecordPath(path string) string {
	return path + constants.DigestFileSuffix
}

// WriteRecord writes a single sha256sum-style line of the form
// "<digest> <path>" to the sidecar record file, overwriting any existing
// record. Last writer wins; there are no append semantics.
func WriteRecord(path, fileDigest string) error {
	record := fmt.Sprintf("%s %s", fileDigest, path)

	if err := os.WriteFile(RecordPath(path), []byte(record), constants.ArtifactFileMode); err != nil {
		return ksignererrors.Wrapf(err, "failed to write digest record for %s", path)
	}
	return nil
}
