package qr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// fakeSource plays back a scripted sequence of frames. Each entry is either
// decoded text or an error; empty text models a frame without a QR code.
type fakeSource struct {
	frames []frame
	pos    int
	closed bool
}

type frame struct {
	text string
	err  error
}

func (f *fakeSource) Next(_ context.Context) (string, error) {
	if f.pos >= len(f.frames) {
		// Past the script: behave like a camera pointed at nothing.
		return "", nil
	}
	fr := f.frames[f.pos]
	f.pos++
	return fr.text, fr.err
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

// blockingSource blocks inside Next until its context is canceled,
// modeling a camera that never sees a QR code.
type blockingSource struct {
	closed bool
}

func (b *blockingSource) Next(ctx context.Context) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (b *blockingSource) Close() error {
	b.closed = true
	return nil
}

func TestCapture_ReturnsFirstNonEmptyPayload(t *testing.T) {
	t.Parallel()

	src := &fakeSource{frames: []frame{
		{text: ""},
		{text: ""},
		{text: "decoded-payload"},
		{text: "never-reached"},
	}}

	got, err := Capture(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "decoded-payload", got)
	assert.Equal(t, 3, src.pos)
}

func TestCapture_DoesNotValidatePayload(t *testing.T) {
	t.Parallel()

	// The channel is pure transport: garbage text is a successful capture.
	src := &fakeSource{frames: []frame{{text: "!!not hex, not base64!!"}}}

	got, err := Capture(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "!!not hex, not base64!!", got)
}

func TestCapture_CanceledBeforeFirstFrame(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{frames: []frame{{text: "would-decode"}}}

	_, err := Capture(ctx, src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ksignererrors.ErrCaptureCanceled)
	assert.Equal(t, 0, src.pos)
}

func TestCapture_CancellationDuringBlockingWait(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	src := &blockingSource{}

	done := make(chan error, 1)
	go func() {
		_, err := Capture(ctx, src)
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, ksignererrors.ErrCaptureCanceled)
	case <-time.After(2 * time.Second):
		t.Fatal("capture did not return after cancellation")
	}

	// The caller owns the source lifecycle and releases the camera even
	// when capture was canceled.
	require.NoError(t, src.Close())
	assert.True(t, src.closed)
}

func TestCapture_SourceFailureSurfaces(t *testing.T) {
	t.Parallel()

	src := &fakeSource{frames: []frame{
		{text: ""},
		{err: ksignererrors.ErrCameraRead},
	}}

	_, err := Capture(context.Background(), src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ksignererrors.ErrCameraRead)
	assert.NotErrorIs(t, err, ksignererrors.ErrCaptureCanceled)
}
