package config

import (
	"github.com/selfcustody/ksigner/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are the base layer that config files and environment
// variables override.
func DefaultConfig() *Config {
	return &Config{
		Camera: CameraConfig{
			// Device: the first camera is right for nearly all laptops.
			Device: constants.DefaultCameraDevice,

			// Timeout: 0 keeps the interactive behavior of waiting until
			// a QR code appears or the user presses Ctrl+C.
			Timeout: 0,
		},
		QR: QRConfig{
			// Recovery: medium tolerates typical screen-to-camera noise
			// without inflating the symbol beyond small displays.
			Recovery: "medium",

			// Inverted: device cameras lock on faster when modules are
			// inverted on dark terminal themes, the common case.
			Inverted: true,
		},
		Sign: SignConfig{
			// Owner: "pubkey" mirrors the historical default certificate
			// name, producing pubkey.pem when --owner is omitted.
			Owner: constants.DefaultOwner,

			// Uncompressed: false because devices export compressed keys
			// by default.
			Uncompressed: false,

			// Armor: true writes standard PEM certificates that openssl
			// accepts directly via -pubin -inkey.
			Armor: true,
		},
		Verify: VerifyConfig{
			// OpenSSLBinary: resolved through PATH; override with a full
			// path when several openssl builds are installed.
			OpenSSLBinary: constants.DefaultOpenSSLBinary,
		},
	}
}
