package qr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

func TestRender(t *testing.T) {
	t.Parallel()

	// A realistic payload: a 64-hex-character SHA-256 digest.
	payload := strings.Repeat("ab12", 16)

	rendered, err := Render(payload, DefaultRenderConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, rendered)
	assert.Contains(t, rendered, "\n")
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := DefaultRenderConfig()
	first, err := Render("same payload", cfg)
	require.NoError(t, err)
	second, err := Render("same payload", cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_InvertedDiffers(t *testing.T) {
	t.Parallel()

	normal, err := Render("payload", RenderConfig{Recovery: RecoveryMedium, Inverted: false})
	require.NoError(t, err)
	inverted, err := Render("payload", RenderConfig{Recovery: RecoveryMedium, Inverted: true})
	require.NoError(t, err)

	assert.NotEqual(t, normal, inverted)
}

func TestRender_EmptyPayload(t *testing.T) {
	t.Parallel()

	_, err := Render("", DefaultRenderConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ksignererrors.ErrEmptyPayload)
}

func TestRender_OversizePayload(t *testing.T) {
	t.Parallel()

	// QR version 40 caps out below 3KB of binary data; 8KB cannot encode.
	oversize := strings.Repeat("x", 8192)

	_, err := Render(oversize, DefaultRenderConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ksignererrors.ErrQREncoding)
}

func TestRecoveryLevel_UnknownFallsBackToMedium(t *testing.T) {
	t.Parallel()

	assert.Equal(t, recoveryLevel(RecoveryMedium), recoveryLevel("bogus"))
	assert.NotEqual(t, recoveryLevel(RecoveryLow), recoveryLevel(RecoveryHighest))
}
