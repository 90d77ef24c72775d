package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunApp(t *testing.T) {
	// Given: a scripted terminal session with a typo, an occupied cell, a win and a decline
	input := strings.Join([]string{
		"1", "1", // X
		"one", "1", "1", // O picks the taken cell after a typo
		"1", "2", // O
		"2", "2", // X
		"1", "3", // O
		"3", "3", // X wins on the diagonal
		"maybe", "n",
	}, "\n") + "\n"
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// When: the app runs
	err := RunApp(logger, strings.NewReader(input), out)

	// Then: the whole session is played through the console
	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "Welcome to Tic-Tac-Toe\n")
	assert.Contains(t, output, "You must enter a valid integer, not: one\n")
	assert.Contains(t, output, "Invalid move. That cell is already taken. Try again.\n")
	assert.Contains(t, output, "| X | O | O | \n")
	assert.Contains(t, output, "Player X wins!\n")
	assert.Contains(t, output, "You must answer Y or N.\n")
	assert.True(t, strings.HasSuffix(output, "Thanks for playing!\n"))
}

func TestRunApp_ClosedInput(t *testing.T) {
	// Given: a terminal that closes right away
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// When: the app runs
	err := RunApp(logger, strings.NewReader(""), out)

	// Then: the app says goodbye and exits cleanly
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "Thanks for playing!\n"))
}
