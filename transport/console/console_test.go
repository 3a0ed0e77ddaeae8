package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func newConsole(input string) (*Console, *bytes.Buffer) {
	output := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(logger, strings.NewReader(input), output), output
}

func TestConsole_Ask(t *testing.T) {
	t.Run("Returns lines in order then EOF", func(t *testing.T) {
		// Given: a console with two input lines
		ctx := context.Background()
		cons, output := newConsole("first\nsecond\n")

		// When: reading three times
		first, err := cons.Ask(ctx, "> ")
		require.NoError(t, err)
		second, err := cons.Ask(ctx, "> ")
		require.NoError(t, err)
		_, err = cons.Ask(ctx, "> ")

		// Then: both lines arrive and the input ends with EOF
		assert.Equal(t, "first", first)
		assert.Equal(t, "second", second)
		require.ErrorIs(t, err, io.EOF)
		assert.Equal(t, "> > > ", output.String())

		// Then: further reads keep returning EOF
		_, err = cons.Ask(ctx, "")
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Returns when the context is canceled", func(t *testing.T) {
		// Given: a console whose input never delivers a line
		reader, writer := io.Pipe()
		cons := New(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, io.Discard)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: asking with a canceled context
		_, err := cons.Ask(ctx, "> ")

		// Then: the context error is returned
		require.ErrorIs(t, err, context.Canceled)

		// Then: the reader stops once its pending read returns
		require.NoError(t, writer.Close())
		assert.Eventually(t, func() bool {
			select {
			case _, ok := <-cons.lines:
				return !ok
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)

		// Then: later reads report the end of input
		_, err = cons.Ask(context.Background(), "> ")
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Reads a line longer than 64 KiB whole", func(t *testing.T) {
		// Given: a 70 KB line followed by a short one
		long := strings.Repeat("a", 70000)
		cons, _ := newConsole(long + "\n" + "5\n")

		// When: reading twice
		first, err := cons.Ask(context.Background(), "")
		require.NoError(t, err)
		second, err := cons.Ask(context.Background(), "")
		require.NoError(t, err)

		// Then: both lines arrive whole
		assert.Equal(t, long, first)
		assert.Equal(t, "5", second)
	})

	t.Run("Keeps the last line without a terminator", func(t *testing.T) {
		cons, _ := newConsole("yes\r\nno")

		first, err := cons.Ask(context.Background(), "")
		require.NoError(t, err)
		second, err := cons.Ask(context.Background(), "")
		require.NoError(t, err)
		_, err = cons.Ask(context.Background(), "")

		assert.Equal(t, "yes", first)
		assert.Equal(t, "no", second)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_AskRetry(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "yes", answer: "yes", want: true},
		{name: "upper case", answer: "Y", want: true},
		{name: "mixed case", answer: "YeAh", want: true},
		{name: "no", answer: "no", want: false},
		{name: "empty", answer: "", want: false},
		{name: "other", answer: "maybe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cons, output := newConsole(tt.answer + "\n")

			retry, err := cons.AskRetry(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, retry)
			assert.Equal(t, retryPrompt, output.String())
		})
	}
}

func TestConsole_RenderMove(t *testing.T) {
	// Given: the Computer has just taken the center
	state := entity.NewGameState(entity.Computer)
	cons, output := newConsole("")
	renderer := entity.Renderer(cons)

	// When: the move is applied with the console as renderer
	require.NoError(t, state.ApplyMove(4, renderer))

	// Then: the mover and the grid are printed
	expected := "Computer played:\n\n" +
		"     |     |\n" +
		"     |     |   \n" +
		"     |     |\n" +
		"-----+-----+-----\n" +
		"     |     |\n" +
		"     |  O  |   \n" +
		"     |     |\n" +
		"-----+-----+-----\n" +
		"     |     |\n" +
		"     |     |   \n" +
		"     |     |\n"
	assert.Equal(t, expected, output.String())
}

func TestConsole_ReportResult(t *testing.T) {
	t.Run("Announces the winner", func(t *testing.T) {
		state := entity.Restore(entity.Board{
			entity.MarkX, entity.MarkX, entity.MarkX,
			entity.MarkO, entity.MarkO, entity.Empty,
			entity.Empty, entity.Empty, entity.Empty,
		}, entity.Computer)
		cons, output := newConsole("")

		cons.ReportResult(state)

		banner := strings.Repeat("!", bannerWidth)
		assert.Equal(t, banner+"\nYou won the game!\n"+banner+"\n", output.String())
	})

	t.Run("Announces a draw", func(t *testing.T) {
		state := entity.Restore(entity.Board{
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkX, entity.MarkO, entity.MarkO,
			entity.MarkO, entity.MarkX, entity.MarkX,
		}, entity.Computer)
		cons, output := newConsole("")

		cons.ReportResult(state)

		assert.Equal(t, drawMessage+"\n", output.String())
	})
}

func TestConsole_Banners(t *testing.T) {
	cons, output := newConsole("")

	cons.Welcome()
	cons.Goodbye()

	assert.Equal(t, welcomeMessage+"\n"+goodbyeMessage+"\n", output.String())
}
