package entity

// DirectionPair is two opposite unit steps that define one line orientation.
type DirectionPair [2]Point

var WinConditions = []DirectionPair{
	{{X: -1, Y: -1}, {X: 1, Y: 1}}, // diagonal
	{{X: 1, Y: -1}, {X: -1, Y: 1}}, // anti-diagonal
	{{X: -1, Y: 0}, {X: 1, Y: 0}},  // vertical
	{{X: 0, Y: -1}, {X: 0, Y: 1}},  // horizontal
}

// CheckState reports whether the player holds board.K cells in a line and
// moves a playing player to Win if so. The state is left untouched when no
// line is found.
func (that *Player) CheckState(board Board) bool {
	for _, cell := range that.moves.order {
		if board.Bounds == BoundsFull && !board.Inside(cell) {
			continue
		}

		for _, direction := range WinConditions {
			if that.countNeighbors(direction, cell, board) >= board.K {
				if that.state == Playing {
					that.state = Win
				}
				return true
			}
		}
	}

	return false
}

// countNeighbors counts the line through cell along direction. It stops as
// soon as the count reaches board.K.
func (that *Player) countNeighbors(direction DirectionPair, cell Point, board Board) int {
	// cell itself is the first mark of the line
	counter := 1
	if counter >= board.K {
		return counter
	}

	for _, step := range direction {
		for next := cell.Add(step); board.Inside(next) && that.moves.Contains(next); next = next.Add(step) {
			counter++
			if counter >= board.K {
				return counter
			}
		}
	}

	return counter
}
