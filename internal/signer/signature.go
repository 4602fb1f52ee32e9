// Package signer orchestrates the air-gapped signing workflow and persists
// the artifacts it produces.
//
// IMPORTANT: This package may import internal/constants, internal/errors,
// internal/ctxutil, internal/digest, internal/qr, internal/pubkey, and
// internal/tui. It MUST NOT import internal/cli.
package signer

import (
	"encoding/base64"
	"os"

	"github.com/selfcustody/ksigner/internal/constants"
	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// SignaturePath returns the sidecar signature path for the given file
// (e.g. "doc.txt" -> "doc.txt.sig").
func SignaturePath(path string) string {
	return path + constants.SignatureFileSuffix
}

// SaveSignature decodes the base64 signature payload captured from the
// optical channel and writes the raw bytes to "<path>.sig" in binary mode,
// overwriting any existing file. The signature's internal structure is not
// validated; the external verifier is its sole consumer.
//
// Returns ErrMalformedBase64 when the payload has invalid padding or
// characters.
func SaveSignature(base64Text, path string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Text)
	if err != nil {
		return "", ksignererrors.Wrap(ksignererrors.ErrMalformedBase64, "decoding signature")
	}

	sigPath := SignaturePath(path)
	if err := os.WriteFile(sigPath, raw, constants.ArtifactFileMode); err != nil {
		return "", ksignererrors.Wrapf(err, "failed to write signature %s", sigPath)
	}
	return sigPath, nil
}
