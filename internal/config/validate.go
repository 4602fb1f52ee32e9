package config

import (
	"github.com/selfcustody/ksigner/internal/errors"
)

// validRecoveryLevels are the accepted qr.recovery values.
//
//nolint:gochecknoglobals // static lookup table
var validRecoveryLevels = map[string]bool{
	"low":     true,
	"medium":  true,
	"high":    true,
	"highest": true,
}

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - Camera device index must not be negative
//   - Camera timeout must not be negative (zero disables the deadline)
//   - QR recovery level must be one of low, medium, high, highest
//   - Sign owner must not be empty
//   - Verify openssl binary must not be empty
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateCameraConfig(&cfg.Camera); err != nil {
		return err
	}

	if err := validateQRConfig(&cfg.QR); err != nil {
		return err
	}

	if err := validateSignConfig(&cfg.Sign); err != nil {
		return err
	}

	return validateVerifyConfig(&cfg.Verify)
}

// validateCameraConfig checks capture-device configuration values.
func validateCameraConfig(cfg *CameraConfig) error {
	if cfg.Device < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidCamera,
			"camera.device must not be negative, got %d", cfg.Device)
	}

	if cfg.Timeout < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidCamera,
			"camera.timeout must not be negative, got %s", cfg.Timeout)
	}

	return nil
}

// validateQRConfig checks QR rendering configuration values.
func validateQRConfig(cfg *QRConfig) error {
	if !validRecoveryLevels[cfg.Recovery] {
		return errors.Wrapf(errors.ErrConfigInvalidQR,
			"qr.recovery must be one of low, medium, high, highest; got %q", cfg.Recovery)
	}

	return nil
}

// validateSignConfig checks sign workflow configuration values.
func validateSignConfig(cfg *SignConfig) error {
	if cfg.Owner == "" {
		return errors.Wrap(errors.ErrConfigInvalidSign,
			"sign.owner must not be empty")
	}

	return nil
}

// validateVerifyConfig checks verify workflow configuration values.
func validateVerifyConfig(cfg *VerifyConfig) error {
	if cfg.OpenSSLBinary == "" {
		return errors.Wrap(errors.ErrConfigInvalidVerify,
			"verify.openssl_binary must not be empty")
	}

	return nil
}
