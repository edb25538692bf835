package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52WritesEscapeSequence(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(Options{Mode: "osc52", Out: &buf})
	require.NoError(t, err)
	require.NoError(t, w.WriteText(context.Background(), "late\tC1"))
	out := buf.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("late\tC1")))
}

func TestOSC52Tmux(t *testing.T) {
	var buf bytes.Buffer
	w := &OSC52{Out: &buf, Passthrough: "tmux"}
	require.NoError(t, w.WriteText(context.Background(), "x"))
	assert.Contains(t, buf.String(), "\x1bPtmux;")
}

func TestStream(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(Options{Mode: "stdout", Out: &buf})
	require.NoError(t, err)
	require.NoError(t, w.WriteText(context.Background(), "a\nb"))
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "copy.txt")
	w, err := New(Options{Mode: "file", Path: p})
	require.NoError(t, err)
	require.NoError(t, w.WriteText(context.Background(), "a\nb"))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(b))

	_, err = New(Options{Mode: "file"})
	assert.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := (&Stream{Out: &buf}).WriteText(ctx, "x")
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, buf.String())
}

func TestUnknownMode(t *testing.T) {
	_, err := New(Options{Mode: "pasteboard"})
	assert.True(t, errors.Is(err, ErrUnknownMode))
}
