// Package config provides configuration management for ksigner with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (KSIGNER_* prefix)
//  2. Project config (.ksigner/config.yaml)
//  3. Global config (~/.ksigner/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for ksigner.
type Config struct {
	// Camera contains settings for the QR capture device.
	Camera CameraConfig `yaml:"camera" mapstructure:"camera"`

	// QR contains settings for terminal QR code rendering.
	QR QRConfig `yaml:"qr" mapstructure:"qr"`

	// Sign contains settings for the sign workflow.
	Sign SignConfig `yaml:"sign" mapstructure:"sign"`

	// Verify contains settings for the verify workflow.
	Verify VerifyConfig `yaml:"verify" mapstructure:"verify"`
}

// CameraConfig contains settings for the QR capture device.
type CameraConfig struct {
	// Device is the video capture device index passed to the camera backend.
	// Default: 0 (the first camera).
	Device int `yaml:"device" mapstructure:"device"`

	// Timeout bounds a single optical capture wait. Zero means no deadline:
	// the capture blocks until a QR code decodes or the user interrupts,
	// matching the interactive default.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// QRConfig contains settings for terminal QR code rendering.
type QRConfig struct {
	// Recovery is the QR error-correction level: low, medium, high, highest.
	// Default: "medium".
	Recovery string `yaml:"recovery" mapstructure:"recovery"`

	// Inverted swaps dark and light modules in the terminal rendering.
	// Default: true, which suits the common light-on-dark terminal scheme.
	Inverted bool `yaml:"inverted" mapstructure:"inverted"`
}

// SignConfig contains settings for the sign workflow.
type SignConfig struct {
	// Owner is the default certificate owner name used when --owner is
	// omitted. Default: "pubkey".
	Owner string `yaml:"owner" mapstructure:"owner"`

	// Uncompressed selects the uncompressed public key certificate form
	// by default. Default: false (compressed).
	Uncompressed bool `yaml:"uncompressed" mapstructure:"uncompressed"`

	// Armor wraps certificates in PEM BEGIN/END delimiters.
	// Default: true. When false, the bare base64 payload is written.
	Armor bool `yaml:"armor" mapstructure:"armor"`
}

// VerifyConfig contains settings for the verify workflow.
type VerifyConfig struct {
	// OpenSSLBinary is the name or path of the openssl executable used
	// for signature verification. Default: "openssl".
	OpenSSLBinary string `yaml:"openssl_binary" mapstructure:"openssl_binary"`
}
