package qr

import (
	"context"

	"github.com/selfcustody/ksigner/internal/ctxutil"
	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// Source delivers decode attempts from a stream of video frames.
// Each Next call grabs one frame and tries to decode a QR code from it,
// returning the decoded text or "" when the frame holds no readable code.
//
// CameraSource is the production implementation; tests substitute fakes.
type Source interface {
	// Next grabs a single frame and attempts QR detection on it.
	// An empty string with a nil error means "no code in this frame";
	// the capture loop will simply try the next frame.
	Next(ctx context.Context) (string, error)

	// Close releases the underlying capture resource. It must be safe to
	// call after a failed Next and after cancellation.
	Close() error
}

// Capture blocks until the source decodes a non-empty payload, then returns
// it verbatim. Payload content is not validated - a capture of garbage text
// succeeds; interpretation belongs to the caller.
//
// There is no built-in deadline: the loop runs until a code is decoded, the
// source fails, or ctx is canceled. Cancellation returns ErrCaptureCanceled
// so callers can tell a user abort from a decode failure. The source is NOT
// closed here; callers own the source lifecycle (defer src.Close()).
func Capture(ctx context.Context, src Source) (string, error) {
	for {
		if err := ctxutil.Canceled(ctx); err != nil {
			return "", ksignererrors.Wrap(ksignererrors.ErrCaptureCanceled, "waiting for qr code")
		}

		text, err := src.Next(ctx)
		if err != nil {
			// A source error during cancellation is reported as the
			// cancellation, not as a camera fault.
			if ctxErr := ctxutil.Canceled(ctx); ctxErr != nil {
				return "", ksignererrors.Wrap(ksignererrors.ErrCaptureCanceled, "waiting for qr code")
			}
			return "", ksignererrors.Wrap(err, "qr capture failed")
		}

		if text != "" {
			return text, nil
		}
	}
}
