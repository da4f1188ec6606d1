package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

// Outcome is the result of a single turn.
type Outcome int

const (
	Continue Outcome = iota
	Won
	Drawn
)

func (that Outcome) String() string {
	switch that {
	case Continue:
		return "continue"
	case Won:
		return "win"
	case Drawn:
		return "draw"
	default:
		return "unknown"
	}
}

const (
	PlayerOneName = "player one"
	PlayerTwoName = "player two"
)

// Session is one game between two players on a fixed board.
type Session struct {
	ID    string
	Board entity.Board
	Round int

	one    *entity.Player
	two    *entity.Player
	result Outcome
	logger *slog.Logger
}

func NewSession(logger *slog.Logger, id string, board entity.Board) *Session {
	return &Session{
		ID:     id,
		Board:  board,
		one:    entity.NewPlayer(PlayerOneName),
		two:    entity.NewPlayer(PlayerTwoName),
		logger: logger.With("component", "session", "session_id", id),
	}
}

// Players returns player one and player two.
func (that *Session) Players() (*entity.Player, *entity.Player) {
	return that.one, that.two
}

// Opponent returns the other player of the session.
func (that *Session) Opponent(player *entity.Player) *entity.Player {
	if player == that.one {
		return that.two
	}

	return that.one
}

func (that *Session) IsFinished() bool {
	return that.result != Continue
}

// Result is the outcome of the last turn that ended the session, or Continue.
func (that *Session) Result() Outcome {
	return that.result
}

// Winner returns the winning player, if any.
func (that *Session) Winner() *entity.Player {
	switch {
	case that.one.HasWon():
		return that.one
	case that.two.HasWon():
		return that.two
	default:
		return nil
	}
}

// Validate checks a move against the board and both players' cells.
func (that *Session) Validate(point entity.Point) error {
	if point.X < 0 || point.Y < 0 || point.X >= that.Board.M || point.Y >= that.Board.N {
		return fmt.Errorf("%w: %s on %s", apperror.ErrOutOfBounds, point, that.Board)
	}

	if that.one.Moves().Contains(point) || that.two.Moves().Contains(point) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, point)
	}

	return nil
}

// PlayTurn records point for current, then checks current for a win and the
// board for a draw. The move must already be valid.
func (that *Session) PlayTurn(current, opponent *entity.Player, point entity.Point) (Outcome, error) {
	if that.IsFinished() {
		return that.result, apperror.ErrSessionFinished
	}

	current.AddMove(point)

	log := that.logger.With("player", current.Name, "move", point.String())

	if current.CheckState(that.Board) {
		that.result = Won
		log.Info("player won", "moves", current.Moves().Len())

		return Won, nil
	}

	if that.Board.Cells() == current.Moves().Len()+opponent.Moves().Len() {
		current.SetDraw()
		opponent.SetDraw()
		that.result = Drawn
		log.Info("board is full, session drawn")

		return Drawn, nil
	}

	log.Debug("move played")

	return Continue, nil
}

// Undo takes back player's last move while the session is running.
func (that *Session) Undo(player *entity.Player) (entity.Point, bool) {
	if that.IsFinished() {
		return entity.Point{}, false
	}

	point, ok := player.Undo()
	if ok {
		that.logger.Debug("move undone", "player", player.Name, "move", point.String())
	}

	return point, ok
}

// TotalMoves is the number of occupied cells.
func (that *Session) TotalMoves() int {
	return that.one.Moves().Len() + that.two.Moves().Len()
}
