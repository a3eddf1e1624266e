package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_ReadLine(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("1+2\r\nx = 3\nlast"), outBuf)
	ctx := context.Background()

	for _, want := range []string{"1+2", "x = 3", "last"} {
		got, err := handler.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := handler.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)

	assert.Empty(t, outBuf.String(), "no prompt configured")
}

func TestTextHandler_Prompt(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("42\n"), outBuf, WithPrompt(">>> "))

	val, err := handler.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", val)
	assert.Equal(t, ">>> ", outBuf.String())
}

func TestTextHandler_CancelledContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	handler := NewTextHandler(pr, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeySniffer(t *testing.T) {
	k := &keySniffer{r: strings.NewReader("1+2\x03")}
	buf := make([]byte, 16)

	_, err := k.Read(buf)
	require.NoError(t, err)
	assert.True(t, k.interrupted())

	k.reset()
	assert.False(t, k.interrupted())

	k = &keySniffer{r: strings.NewReader("1+2\x04")}
	_, err = k.Read(buf)
	require.NoError(t, err)
	assert.False(t, k.interrupted(), "Ctrl-D is not an interrupt")
}
