// Package errors provides centralized error handling for ksigner.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrFileNotFound indicates that an input file is missing or unreadable.
	ErrFileNotFound = errors.New("file not found or unreadable")

	// ErrQREncoding indicates that a payload could not be rendered as a QR code.
	ErrQREncoding = errors.New("qr encoding failed")

	// ErrMalformedHex indicates that a captured or constructed hex payload
	// has odd length or non-hex characters and cannot be decoded.
	ErrMalformedHex = errors.New("malformed hex payload")

	// ErrMalformedBase64 indicates that a captured base64 payload has invalid
	// padding or characters and cannot be decoded.
	ErrMalformedBase64 = errors.New("malformed base64 payload")

	// ErrExternalTool indicates that the verification subprocess could not
	// be launched (e.g., openssl is not installed or not on PATH).
	ErrExternalTool = errors.New("external verification tool unavailable")

	// ErrVerificationFailed indicates that the verification subprocess ran
	// but reported a signature mismatch (non-zero exit status).
	ErrVerificationFailed = errors.New("signature verification failed")

	// ErrCaptureCanceled indicates that the user aborted an optical-capture
	// wait before any QR code was decoded.
	ErrCaptureCanceled = errors.New("capture canceled")

	// ErrCameraOpen indicates that the video capture device could not be opened.
	ErrCameraOpen = errors.New("cannot open camera device")

	// ErrCameraRead indicates that the video capture device stopped
	// delivering frames mid-capture.
	ErrCameraRead = errors.New("cannot read camera frame")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidCamera indicates an invalid camera configuration value.
	ErrConfigInvalidCamera = errors.New("invalid camera configuration")

	// ErrConfigInvalidQR indicates an invalid QR configuration value.
	ErrConfigInvalidQR = errors.New("invalid qr configuration")

	// ErrConfigInvalidSign indicates an invalid sign configuration value.
	ErrConfigInvalidSign = errors.New("invalid sign configuration")

	// ErrConfigInvalidVerify indicates an invalid verify configuration value.
	ErrConfigInvalidVerify = errors.New("invalid verify configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrMissingFlag indicates that a required flag was not provided for
	// the chosen subcommand.
	ErrMissingFlag = errors.New("required flag missing")

	// ErrEmptyPayload indicates that an empty payload was offered to the
	// optical channel.
	ErrEmptyPayload = errors.New("payload cannot be empty")

	// ErrPromptDeclined indicates that the user declined a workflow prompt.
	ErrPromptDeclined = errors.New("prompt declined by user")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
