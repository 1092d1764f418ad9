package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminal_NonTTYSkipsClear(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalTo(&buf)

	require.False(t, term.IsTTY())
	term.ClearLine()
	_, err := term.Write([]byte("line\n"))
	require.NoError(t, err)

	require.Equal(t, "line\n", buf.String())
}

func TestTerminal_TTYBlanksLine(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalTo(&buf, WithTTY(true), WithWidth(6))

	term.ClearLine()

	require.Equal(t, "\r     \r", buf.String())
}

func TestTerminal_ZeroWidthFallsBack(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalTo(&buf, WithTTY(true), WithWidth(0))

	term.ClearLine()

	require.Len(t, buf.String(), defaultWidth+1)
}
