package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, "json"))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, "text"))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, ""))
}

func TestTTYOutput_Messages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewTTYOutput(&buf)

	out.Success("signature saved")
	out.Warning("camera is slow")
	out.Info("scanning")
	out.Error(errors.New("boom"))

	rendered := buf.String()
	assert.Contains(t, rendered, "signature saved")
	assert.Contains(t, rendered, "camera is slow")
	assert.Contains(t, rendered, "scanning")
	assert.Contains(t, rendered, "boom")
}

func TestTTYOutput_PlainIsVerbatim(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewTTYOutput(&buf)

	qrBlock := "█▀▀▀█\n█ ▄ █\n▀▀▀▀▀"
	out.Plain(qrBlock)

	assert.Equal(t, qrBlock+"\n", buf.String())
}

func TestJSONOutput_SuppressesHumanMessages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Success("hidden")
	out.Warning("hidden")
	out.Info("hidden")

	assert.Empty(t, buf.String())
}

func TestJSONOutput_PlainStillPrints(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Plain("qr block")
	assert.Equal(t, "qr block\n", buf.String())
}

func TestJSONOutput_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Error(errors.New("verification failed"))

	var payload map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "verification failed", payload["error"])
}

func TestJSON_RoundTrips(t *testing.T) {
	t.Parallel()

	type result struct {
		File   string `json:"file"`
		Digest string `json:"digest"`
	}

	for _, format := range []string{"text", "json"} {
		var buf bytes.Buffer
		out := NewOutput(&buf, format)

		require.NoError(t, out.JSON(result{File: "doc.txt", Digest: "abc"}))

		var decoded result
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "doc.txt", decoded.File)
	}
}

func TestHasColorSupport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, HasColorSupport())
}

func TestHasColorSupport_DumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.False(t, HasColorSupport())
}
