package entity

// PlayerState is the standing of one player within a session.
type PlayerState int

const (
	Playing PlayerState = iota
	Win
	Draw
)

func (that PlayerState) String() string {
	switch that {
	case Playing:
		return "playing"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Moves is a read-only view of a player's cells.
type Moves interface {
	Contains(point Point) bool
	Last() (Point, bool)
	Len() int
	Points() []Point
	String() string
}

// Player owns the cells one side has occupied. The zero value is a playing
// player with no moves.
type Player struct {
	Name string

	moves MoveSet
	state PlayerState
}

func NewPlayer(name string) *Player {
	return &Player{
		Name:  name,
		state: Playing,
	}
}

func (that *Player) Moves() Moves {
	return &that.moves
}

func (that *Player) State() PlayerState {
	return that.state
}

// AddMove records point. The caller guarantees it is on the board and free.
func (that *Player) AddMove(point Point) {
	that.moves.Add(point)
}

// Undo removes the last move while the player is still playing.
func (that *Player) Undo() (Point, bool) {
	if that.state != Playing {
		return Point{}, false
	}

	return that.moves.RemoveLast()
}

// SetDraw marks a player that is still playing as drawn.
func (that *Player) SetDraw() {
	if that.state == Playing {
		that.state = Draw
	}
}

func (that *Player) IsPlaying() bool {
	return that.state == Playing
}

func (that *Player) HasWon() bool {
	return that.state == Win
}
