package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// cyclingInput answers 1..9 over and over, so the human always ends up on the lowest free cell.
func cyclingInput(rounds int) string {
	var sb strings.Builder
	for i := 0; i < rounds; i++ {
		sb.WriteString("1\n2\n3\n4\n5\n6\n7\n8\n9\n")
	}
	return sb.String()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	t.Run("Computer never loses a full session", func(t *testing.T) {
		// Given: a human opening the game and answering naively
		conf := &config.Config{LogLevel: "warn", FirstPlayer: config.FirstPlayerHuman}
		output := &bytes.Buffer{}

		// When: the session runs
		err := Run(context.Background(), discardLogger(), conf, strings.NewReader(cyclingInput(6)), output)

		// Then: the game ends without a human win and the session closes politely
		require.NoError(t, err)
		transcript := output.String()
		assert.Contains(t, transcript, "Welcome to tic-tac-toe")
		assert.Contains(t, transcript, "You played:")
		assert.Contains(t, transcript, "Computer played:")
		assert.NotContains(t, transcript, "You won the game!")
		assert.True(t, strings.Contains(transcript, "Computer won the game!") || strings.Contains(transcript, "GAME DRAW!!!"))
		assert.Contains(t, transcript, "would you like to retry the game?")
		assert.Contains(t, transcript, "Thanks for playing the game. see you later!!")
	})

	t.Run("Hidden board prints no grid", func(t *testing.T) {
		conf := &config.Config{LogLevel: "warn", FirstPlayer: config.FirstPlayerHuman, HideBoard: true}
		output := &bytes.Buffer{}

		err := Run(context.Background(), discardLogger(), conf, strings.NewReader(cyclingInput(6)), output)

		require.NoError(t, err)
		assert.NotContains(t, output.String(), "played:")
	})

	t.Run("Overlong answer is just another invalid choice", func(t *testing.T) {
		// Given: a 70 KB first answer followed by ordinary moves
		conf := &config.Config{LogLevel: "warn", FirstPlayer: config.FirstPlayerHuman}
		output := &bytes.Buffer{}
		input := strings.Repeat("a", 70000) + "\n" + cyclingInput(6)

		// When: the session runs
		err := Run(context.Background(), discardLogger(), conf, strings.NewReader(input), output)

		// Then: the human is asked again and the session closes politely
		require.NoError(t, err)
		assert.Contains(t, output.String(), "invalid choice please try again")
		assert.Contains(t, output.String(), "Thanks for playing the game. see you later!!")
	})

	t.Run("Closed input ends the session normally", func(t *testing.T) {
		// Given: no input at all
		conf := &config.Config{LogLevel: "warn", FirstPlayer: config.FirstPlayerHuman}
		output := &bytes.Buffer{}

		// When: the session runs
		err := Run(context.Background(), discardLogger(), conf, strings.NewReader(""), output)

		// Then: it stops without an error and without a goodbye
		require.NoError(t, err)
		assert.NotContains(t, output.String(), "Thanks for playing")
	})

	t.Run("Canceled context ends the session normally", func(t *testing.T) {
		conf := &config.Config{LogLevel: "warn", FirstPlayer: config.FirstPlayerHuman}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, discardLogger(), conf, strings.NewReader(""), io.Discard)

		require.NoError(t, err)
	})
}
