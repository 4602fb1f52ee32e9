package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("preserves error chain", func(t *testing.T) {
		t.Parallel()
		wrapped := Wrap(ErrVerificationFailed, "verifying doc.txt")

		require.Error(t, wrapped)
		assert.ErrorIs(t, wrapped, ErrVerificationFailed)
		assert.Contains(t, wrapped.Error(), "verifying doc.txt")
	})
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Wrapf(nil, "context %s", "value"))
	})

	t.Run("formats context", func(t *testing.T) {
		t.Parallel()
		wrapped := Wrapf(ErrFileNotFound, "hashing %s", "doc.txt")

		require.Error(t, wrapped)
		assert.ErrorIs(t, wrapped, ErrFileNotFound)
		assert.Contains(t, wrapped.Error(), "hashing doc.txt")
	})
}

func TestExitCode2Error(t *testing.T) {
	t.Parallel()

	inner := ErrMissingFlag
	wrapped := NewExitCode2Error(inner)

	assert.Equal(t, inner.Error(), wrapped.Error())
	assert.ErrorIs(t, wrapped, inner)
	assert.True(t, IsExitCode2Error(wrapped))
	assert.True(t, IsExitCode2Error(fmt.Errorf("outer: %w", wrapped)))
	assert.False(t, IsExitCode2Error(inner))
	assert.False(t, IsExitCode2Error(nil))
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "mapped sentinel",
			err:  ErrVerificationFailed,
			want: "The signature does not match the file and public key.",
		},
		{
			name: "wrapped sentinel still maps",
			err:  Wrap(ErrMalformedHex, "building certificate"),
			want: "The scanned public key is not valid hex.",
		},
		{
			name: "unmapped error falls back to raw text",
			err:  stderrors.New("something odd"),
			want: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}

	assert.Empty(t, UserMessage(nil))
}

func TestActionable(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Actionable(ErrExternalTool))
	assert.Empty(t, Actionable(stderrors.New("unmapped")))
	assert.Empty(t, Actionable(nil))
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrFileNotFound,
		ErrQREncoding,
		ErrMalformedHex,
		ErrMalformedBase64,
		ErrExternalTool,
		ErrVerificationFailed,
		ErrCaptureCanceled,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
