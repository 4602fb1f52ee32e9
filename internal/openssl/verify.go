// Package openssl invokes the external openssl CLI to verify signatures.
//
// Verification is deliberately delegated: ksigner implements no
// cryptographic primitive itself. The subprocess contract is the pipeline
//
//	openssl sha256 -binary <file> | openssl pkeyutl -verify -pubin \
//	    -inkey <pub.pem> -sigfile <sig>
//
// executed as two argument-array processes with the digest handed over in
// memory. No shell ever interprets the command, so file paths containing
// spaces or metacharacters cannot alter its structure.
//
// IMPORTANT: This package may import internal/errors and internal/ctxutil,
// but MUST NOT import other internal packages.
package openssl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/selfcustody/ksigner/internal/ctxutil"
	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// Verifier runs signature verification through the openssl binary.
type Verifier struct {
	// Binary is the openssl executable name or path, resolved via PATH
	// when not absolute.
	Binary string
}

// New creates a Verifier for the given openssl binary.
func New(binary string) *Verifier {
	return &Verifier{Binary: binary}
}

// Verify checks that sigPath holds a valid signature over the SHA-256
// digest of filePath, using the public key certificate at pubPath.
//
// Error taxonomy:
//   - ErrExternalTool: the openssl binary could not be found or launched
//   - ErrVerificationFailed: openssl ran and reported a mismatch
//   - ErrFileNotFound: openssl could not read one of the input files
func (v *Verifier) Verify(ctx context.Context, filePath, pubPath, sigPath string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if _, err := exec.LookPath(v.Binary); err != nil {
		return fmt.Errorf("%q not found on PATH: %w", v.Binary, ksignererrors.ErrExternalTool)
	}

	binaryDigest, err := v.digest(ctx, filePath)
	if err != nil {
		return err
	}

	return v.verifyDigest(ctx, binaryDigest, pubPath, sigPath)
}

// digest runs "openssl sha256 -binary <file>" and returns the raw 32-byte
// digest from stdout.
func (v *Verifier) digest(ctx context.Context, filePath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, v.Binary, "sha256", "-binary", filePath) //#nosec G204 -- argument array, no shell interpretation

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, classifyRunError(err, "sha256", &stderr, ksignererrors.ErrFileNotFound)
	}

	return stdout.Bytes(), nil
}

// verifyDigest feeds the binary digest to "openssl pkeyutl -verify" via stdin.
// A non-zero exit status from a launched process is a verification failure,
// distinct from a launch failure.
func (v *Verifier) verifyDigest(ctx context.Context, binaryDigest []byte, pubPath, sigPath string) error {
	cmd := exec.CommandContext(ctx, v.Binary, //#nosec G204 -- argument array, no shell interpretation
		"pkeyutl", "-verify", "-pubin",
		"-inkey", pubPath,
		"-sigfile", sigPath,
	)
	cmd.Stdin = bytes.NewReader(binaryDigest)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return classifyRunError(err, "pkeyutl", &stderr, ksignererrors.ErrVerificationFailed)
	}

	return nil
}

// classifyRunError maps a cmd.Run failure to the error taxonomy: exit
// errors wrap the given sentinel (the tool ran and said no), anything else
// wraps ErrExternalTool (the tool never ran).
func classifyRunError(err error, op string, stderr *bytes.Buffer, ranSentinel error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if stderr.Len() > 0 {
			return fmt.Errorf("openssl %s: %s: %w", op, strings.TrimSpace(stderr.String()), ranSentinel)
		}
		return fmt.Errorf("openssl %s exited with status %d: %w", op, exitErr.ExitCode(), ranSentinel)
	}
	return fmt.Errorf("failed to launch openssl %s: %w", op, ksignererrors.ErrExternalTool)
}
