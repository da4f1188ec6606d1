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
	"time"

	"github.com/rocketscienceinc/mnk-game/internal/entity"
	"github.com/rocketscienceinc/mnk-game/internal/tictactoe"
)

const banner = "~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~"

// Console drives sessions over a line based text stream.
type Console struct {
	logger   *slog.Logger
	in       *bufio.Scanner
	out      io.Writer
	defaults entity.Board
	newID    func() string

	lines     chan inputLine
	startRead sync.Once
}

type inputLine struct {
	text string
	err  error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, defaults entity.Board, newID func() string) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		in:       bufio.NewScanner(in),
		out:      out,
		defaults: defaults,
		newID:    newID,
		lines:    make(chan inputLine),
	}
}

// Run plays sessions until the player declines another one or input ends.
func (that *Console) Run(ctx context.Context) error {
	for {
		if _, err := that.PlaySession(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				that.logger.Info("input closed, leaving")
				return nil
			}

			return err
		}

		answer, err := that.ask(ctx, "DO YOU WANT TO PLAY AGAIN? (YES/NO)")
		if errors.Is(err, io.EOF) || (err == nil && !isYes(answer)) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// PlaySession asks for the board and plays one session to its end.
func (that *Console) PlaySession(ctx context.Context) (*tictactoe.Session, error) {
	fmt.Fprintln(that.out, "--------- WELCOME TO THE M,N,K VARIATION OF TIC TAC TOE ---------")

	board, err := that.readBoard(ctx)
	if err != nil {
		return nil, err
	}

	// the next session offers this board as its default
	that.defaults = board

	session := tictactoe.NewSession(that.logger, that.newID(), board)
	that.logger.Info("session started", "session_id", session.ID, "board", board.String())

	started := time.Now()
	one, two := session.Players()

	for !session.IsFinished() {
		if _, err = that.playTurn(ctx, session, one, two); err != nil {
			return session, err
		}

		if session.IsFinished() {
			that.printStatus(session.Round+1, session)
			break
		}

		if _, err = that.playTurn(ctx, session, two, one); err != nil {
			return session, err
		}

		session.Round++
		that.printStatus(session.Round, session)
	}

	elapsed := time.Since(started)
	fmt.Fprintf(that.out, "Elapsed: %s\n\n", elapsed)
	that.logger.Info("session finished", "session_id", session.ID, "result", session.Result().String(), "elapsed", elapsed)

	return session, nil
}

func (that *Console) readBoard(ctx context.Context) (entity.Board, error) {
	board := that.defaults

	prompts := []struct {
		text  string
		value *int
	}{
		{fmt.Sprintf("ENTER THE NUMBER OF M ROWS (DEFAULT IS %d)", that.defaults.M), &board.M},
		{fmt.Sprintf("ENTER THE NUMBER OF N COLUMNS (DEFAULT IS %d)", that.defaults.N), &board.N},
		{fmt.Sprintf("ENTER THE WINNING THRESHOLD K (DEFAULT IS %d)", that.defaults.K), &board.K},
	}

	for _, prompt := range prompts {
		for {
			input, err := that.ask(ctx, prompt.text)
			if err != nil {
				return entity.Board{}, err
			}

			value, err := ParseDimension(input, *prompt.value)
			if err != nil {
				fmt.Fprintf(that.out, "--------- %s ---------\n", err)
				continue
			}

			*prompt.value = value
			break
		}
	}

	return board, nil
}

// playTurn reads moves for current until one sticks: a move that ends the
// session, or one the player declines to undo.
func (that *Console) playTurn(ctx context.Context, session *tictactoe.Session, current, opponent *entity.Player) (tictactoe.Outcome, error) {
	label := strings.ToUpper(current.Name)

	for {
		point, err := that.readMove(ctx, session, label)
		if err != nil {
			return tictactoe.Continue, err
		}

		outcome, err := session.PlayTurn(current, opponent, point)
		if err != nil {
			return outcome, fmt.Errorf("play turn: %w", err)
		}

		switch outcome {
		case tictactoe.Won:
			fmt.Fprintf(that.out, "\n%s\n--------- %s HAS WON! ---------\n%s\n\n", banner, label, banner)
			return outcome, nil
		case tictactoe.Drawn:
			fmt.Fprintln(that.out, "\n--------- BOTH PLAYERS HAVE DRAWN! ---------")
			return outcome, nil
		}

		answer, err := that.ask(ctx, fmt.Sprintf("WOULD YOU LIKE TO UNDO YOUR MOVE %s? (YES/NO)", label))
		if err != nil {
			return tictactoe.Continue, err
		}

		if !isYes(answer) {
			return outcome, nil
		}

		session.Undo(current)
	}
}

func (that *Console) readMove(ctx context.Context, session *tictactoe.Session, label string) (entity.Point, error) {
	for {
		input, err := that.ask(ctx, fmt.Sprintf("ENTER THE NEXT MOVE %s (FORMAT: x y)", label))
		if err != nil {
			return entity.Point{}, err
		}

		point, err := ParseMove(input)
		if err == nil {
			err = session.Validate(point)
		}

		if err != nil {
			that.logger.Debug("rejected move", "input", input, "error", err)
			fmt.Fprintf(that.out, "--------- Please enter a valid x y move: %s ---------\n", err)
			continue
		}

		return point, nil
	}
}

func (that *Console) printStatus(round int, session *tictactoe.Session) {
	one, two := session.Players()

	fmt.Fprintf(that.out, "\n%s\n--------- CURRENT STATE OF BOARD ---------\n\n", banner)
	fmt.Fprintf(that.out, "ROUND: %d\n\n", round)
	fmt.Fprintf(that.out, "PLAYER ONE'S MOVES:\n%s\n\n", one.Moves())
	fmt.Fprintf(that.out, "PLAYER TWO'S MOVES:\n%s\n\n", two.Moves())
	RenderBoard(that.out, session)
	fmt.Fprintf(that.out, "%s\n\n", banner)
}

// ask prints a prompt and returns the next input line. It gives up as soon
// as ctx is done, even while waiting for input.
func (that *Console) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("session aborted: %w", err)
	}

	fmt.Fprintf(that.out, "\n--------- %s ---------\n\n", prompt)

	that.startRead.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("session aborted: %w", ctx.Err())
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		if line.err != nil {
			return "", fmt.Errorf("read input: %w", line.err)
		}

		return line.text, nil
	}
}

// readLines feeds input lines to ask until the input ends.
func (that *Console) readLines() {
	defer close(that.lines)

	for that.in.Scan() {
		that.lines <- inputLine{text: that.in.Text()}
	}

	if err := that.in.Err(); err != nil {
		that.lines <- inputLine{err: err}
	}
}
