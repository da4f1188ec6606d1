package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
	"github.com/rocketscienceinc/mnk-game/internal/tictactoe"
)

const undoCommand = "undo"

// Replay applies a move script to a fresh session. Each line is "x y" for
// the player to move, or "undo" to take back the last move and hand the turn
// back to the player who made it. Blank lines and lines starting with # are
// skipped.
func Replay(ctx context.Context, logger *slog.Logger, id string, board entity.Board, script io.Reader) (*tictactoe.Session, error) {
	session := tictactoe.NewSession(logger, id, board)
	one, two := session.Players()
	current, opponent := one, two

	scanner := bufio.NewScanner(script)
	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return session, fmt.Errorf("replay aborted: %w", err)
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if session.IsFinished() {
			return session, fmt.Errorf("line %d: %w", line, apperror.ErrSessionFinished)
		}

		if strings.EqualFold(text, undoCommand) {
			// opponent made the last move
			if _, ok := session.Undo(opponent); ok {
				if opponent == two {
					session.Round--
				}
				current, opponent = opponent, current
			}
			continue
		}

		point, err := ParseMove(text)
		if err == nil {
			err = session.Validate(point)
		}

		if err != nil {
			return session, fmt.Errorf("line %d: %w", line, err)
		}

		if _, err = session.PlayTurn(current, opponent, point); err != nil {
			return session, fmt.Errorf("line %d: %w", line, err)
		}

		if current == two {
			session.Round++
		}

		current, opponent = opponent, current
	}

	if err := scanner.Err(); err != nil {
		return session, fmt.Errorf("read script: %w", err)
	}

	return session, nil
}

// PrintResult writes the outcome of a replayed session.
func PrintResult(out io.Writer, session *tictactoe.Session) {
	one, two := session.Players()

	switch session.Result() {
	case tictactoe.Won:
		fmt.Fprintf(out, "%s has won\n", session.Winner().Name)
	case tictactoe.Drawn:
		fmt.Fprintln(out, "both players have drawn")
	default:
		fmt.Fprintln(out, "no result yet")
	}

	fmt.Fprintf(out, "board: %s\n", session.Board)
	fmt.Fprintf(out, "%s: %s\n", one.Name, one.Moves())
	fmt.Fprintf(out, "%s: %s\n", two.Name, two.Moves())
	RenderBoard(out, session)
}
