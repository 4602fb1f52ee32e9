package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Input files
	// ===================
	{
		err: ErrFileNotFound,
		info: ErrorInfo{
			Message: "The target file could not be read.",
			Action:  "Check the path passed to --file and its read permissions.",
		},
	},

	// ===================
	// Optical channel
	// ===================
	{
		err: ErrQREncoding,
		info: ErrorInfo{
			Message: "The payload could not be encoded as a QR code.",
			Action:  "The payload may exceed QR capacity; verify the input file was hashed correctly.",
		},
	},
	{
		err: ErrCaptureCanceled,
		info: ErrorInfo{
			Message: "QR capture was canceled before a code was decoded.",
			Action:  "Re-run 'ksigner sign' and present the QR code to the camera.",
		},
	},
	{
		err: ErrCameraOpen,
		info: ErrorInfo{
			Message: "The camera device could not be opened.",
			Action:  "Check the camera.device index in configuration and that no other program holds the camera.",
		},
	},
	{
		err: ErrCameraRead,
		info: ErrorInfo{
			Message: "The camera stopped delivering frames.",
			Action:  "Reconnect the camera and re-run the command.",
		},
	},

	// ===================
	// Captured payloads
	// ===================
	{
		err: ErrMalformedHex,
		info: ErrorInfo{
			Message: "The scanned public key is not valid hex.",
			Action:  "Re-scan the public key QR code shown on the signing device.",
		},
	},
	{
		err: ErrMalformedBase64,
		info: ErrorInfo{
			Message: "The scanned signature is not valid base64.",
			Action:  "Re-scan the signature QR code shown on the signing device.",
		},
	},

	// ===================
	// Verification
	// ===================
	{
		err: ErrExternalTool,
		info: ErrorInfo{
			Message: "The openssl tool could not be launched.",
			Action:  "Install openssl or set verify.openssl_binary to its full path.",
		},
	},
	{
		err: ErrVerificationFailed,
		info: ErrorInfo{
			Message: "The signature does not match the file and public key.",
			Action:  "Confirm the file, .sig, and .pem paths belong to the same signing session.",
		},
	},

	// ===================
	// Configuration & flags
	// ===================
	{
		err: ErrMissingFlag,
		info: ErrorInfo{
			Message: "A required flag is missing for this subcommand.",
			Action:  "Run 'ksigner --help' for the required flag combinations.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "The requested output format is not supported.",
			Action:  "Use --output text or --output json.",
		},
	},
}

// UserMessage returns a user-friendly message for the given error.
// Falls back to the raw error text when no mapping exists.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Message
		}
	}
	return err.Error()
}

// Actionable returns a suggested action for the given error, or an
// empty string when no suggestion exists.
func Actionable(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Action
		}
	}
	return ""
}
