// Package console is the line-oriented terminal surface of the game.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	welcomeMessage = "Welcome to tic-tac-toe You vs. Computer. " +
		"You will play with mark 'X' while computer will play with 'O'"
	goodbyeMessage = "Thanks for playing the game. see you later!!"
	retryPrompt    = "would you like to retry the game? (Yes / No):"
	drawMessage    = "GAME DRAW!!!"

	bannerWidth = 20
)

type line struct {
	text string
	err  error
}

// Console reads answers from in and writes the game transcript to out.
type Console struct {
	logger *slog.Logger

	in    io.Reader
	out   io.Writer
	lines chan line
	done  chan struct{}
	once  sync.Once
	stop  sync.Once
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,
		lines:  make(chan line),
		done:   make(chan struct{}),
	}
}

// Ask prints prompt and waits for the next input line or for ctx to be done.
// io.EOF is returned once the input is exhausted. Once ctx ends the console stops reading
// and later calls report io.EOF.
func (that *Console) Ask(ctx context.Context, prompt string) (string, error) {
	that.write(prompt)
	that.once.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		that.stop.Do(func() {
			close(that.done)
		})
		return "", fmt.Errorf("input canceled: %w", ctx.Err())
	case next, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return next.text, next.err
	}
}

// readLines delivers whole lines of any length, without the line terminator.
func (that *Console) readLines() {
	defer close(that.lines)

	reader := bufio.NewReader(that.in)
	for {
		text, err := reader.ReadString('\n')
		// the last line may lack a terminator
		if text != "" && (err == nil || errors.Is(err, io.EOF)) {
			if !that.send(line{text: trimEOL(text)}) {
				return
			}
		}

		if err != nil {
			that.send(line{err: err})
			return
		}
	}
}

func (that *Console) send(next line) bool {
	select {
	case that.lines <- next:
		return true
	case <-that.done:
		return false
	}
}

func trimEOL(text string) string {
	return strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
}

func (that *Console) Say(message string) {
	that.write(message + "\n")
}

func (that *Console) Welcome() {
	that.Say(welcomeMessage)
}

func (that *Console) Goodbye() {
	that.Say(goodbyeMessage)
}

// AskRetry is true when the answer starts with "y", in any case.
func (that *Console) AskRetry(ctx context.Context) (bool, error) {
	answer, err := that.Ask(ctx, retryPrompt)
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y"), nil
}

// RenderMove draws the board after a move. The mover is still the state's current player.
func (that *Console) RenderMove(state *entity.GameState) {
	that.write(fmt.Sprintf("%s played:\n\n%s", state.CurrentPlayer(), FormatBoard(state.Board())))
}

func (that *Console) ReportResult(state *entity.GameState) {
	winner, ok := state.Winner()
	if !ok {
		that.Say(drawMessage)
		return
	}

	banner := strings.Repeat("!", bannerWidth)
	that.Say(banner)
	that.Say(fmt.Sprintf("%s won the game!", winner))
	that.Say(banner)
}

func (that *Console) write(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write to console", "error", err)
	}
}

// FormatBoard renders board as a 3x3 grid.
func FormatBoard(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("-----+-----+-----\n")
		}
		sb.WriteString("     |     |\n")
		fmt.Fprintf(&sb, "  %s  |  %s  |  %s\n", board[row*3], board[row*3+1], board[row*3+2])
		sb.WriteString("     |     |\n")
	}

	return sb.String()
}
