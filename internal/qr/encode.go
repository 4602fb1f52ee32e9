// Package qr implements the optical channel that carries payloads across
// the air gap.
//
// The channel has two directions: Render encodes opaque text as a terminal
// QR code for the signing device to scan, and Capture blocks on a frame
// source until a QR code presented to the camera decodes to non-empty text.
// Payload semantics are entirely the caller's concern - the channel moves
// text, it never interprets it.
//
// IMPORTANT: This package may import internal/constants, internal/errors,
// and internal/ctxutil. It MUST NOT import internal/cli or internal/signer.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// RecoveryLevel names for configuration values.
const (
	RecoveryLow     = "low"
	RecoveryMedium  = "medium"
	RecoveryHigh    = "high"
	RecoveryHighest = "highest"
)

// RenderConfig controls how payloads are rendered as terminal QR codes.
type RenderConfig struct {
	// Recovery is the QR error-correction level (low, medium, high, highest).
	// Higher levels tolerate more optical noise at the cost of density.
	Recovery string

	// Inverted swaps dark and light modules. Terminals with light-on-dark
	// color schemes usually need this for device cameras to lock on.
	Inverted bool
}

// DefaultRenderConfig returns the render settings used when no
// configuration is provided: medium recovery, inverted modules.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{Recovery: RecoveryMedium, Inverted: true}
}

// recoveryLevel maps a configuration name to the encoder's recovery level.
// Unknown names fall back to medium.
func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case RecoveryLow:
		return qrcode.Low
	case RecoveryHigh:
		return qrcode.High
	case RecoveryHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Render encodes text as a QR code and returns its half-block terminal
// rendering. The payload is opaque; it is bounded only by QR capacity.
//
// Returns ErrEmptyPayload for empty text and ErrQREncoding when the
// payload cannot be encoded (e.g. it exceeds QR version 40 capacity).
func Render(text string, cfg RenderConfig) (string, error) {
	if text == "" {
		return "", ksignererrors.ErrEmptyPayload
	}

	code, err := qrcode.New(text, recoveryLevel(cfg.Recovery))
	if err != nil {
		return "", fmt.Errorf("cannot encode %d-byte payload: %w", len(text), ksignererrors.ErrQREncoding)
	}

	return code.ToSmallString(cfg.Inverted), nil
}
