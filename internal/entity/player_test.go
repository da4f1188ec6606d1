package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerWith(points ...Point) *Player {
	player := NewPlayer("test")
	for _, point := range points {
		player.AddMove(point)
	}

	return player
}

func TestPlayer_CheckState(t *testing.T) {
	board := DefaultBoard()

	lines := map[string][]Point{
		"row":           {{1, 0}, {1, 1}, {1, 2}},
		"column":        {{0, 2}, {1, 2}, {2, 2}},
		"main diagonal": {{0, 0}, {1, 1}, {2, 2}},
		"anti diagonal": {{0, 2}, {1, 1}, {2, 0}},
	}

	for name, points := range lines {
		t.Run("Wins on "+name, func(t *testing.T) {
			// Given: a player holding three cells in a line
			player := playerWith(points...)

			// When: checking the player's state
			won := player.CheckState(board)

			// Then: the player has won
			assert.True(t, won)
			assert.Equal(t, Win, player.State())
		})
	}

	t.Run("No win below k in every direction", func(t *testing.T) {
		// Given: a player with two cells per line at most
		player := playerWith(NewPoint(0, 0), NewPoint(0, 1), NewPoint(1, 2), NewPoint(2, 0))

		// When: checking the player's state
		won := player.CheckState(board)

		// Then: the player keeps playing
		assert.False(t, won)
		assert.Equal(t, Playing, player.State())
	})

	t.Run("Idempotent on a winning configuration", func(t *testing.T) {
		// Given: a player holding the main diagonal
		player := playerWith(NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2))

		// When: checking twice
		first := player.CheckState(board)
		second := player.CheckState(board)

		// Then: both checks report a win
		assert.True(t, first)
		assert.True(t, second)
		assert.Equal(t, Win, player.State())
	})

	t.Run("Horizontal row of four on a 5x5 board", func(t *testing.T) {
		// Given: a 5x5 board with k=4 and three cells in row 0
		board := NewBoard(5, 5, 4)
		player := playerWith(NewPoint(0, 0), NewPoint(0, 1), NewPoint(0, 2))

		// When: checking the player's state
		won := player.CheckState(board)

		// Then: three is not enough
		require.False(t, won)
		require.Equal(t, Playing, player.State())

		// When: the fourth cell is added
		player.AddMove(NewPoint(0, 3))

		// Then: the row wins
		assert.True(t, player.CheckState(board))
		assert.Equal(t, Win, player.State())
	})

	t.Run("Line counted from a middle cell", func(t *testing.T) {
		// Given: a vertical line whose cells were played out of order
		board := NewBoard(6, 6, 5)
		player := playerWith(NewPoint(3, 4), NewPoint(1, 4), NewPoint(5, 4), NewPoint(2, 4), NewPoint(4, 4))

		// When: checking the player's state
		won := player.CheckState(board)

		// Then: the five cells win
		assert.True(t, won)
	})

	t.Run("Gap breaks the line", func(t *testing.T) {
		// Given: four cells with a hole in the middle
		board := NewBoard(1, 7, 4)
		player := playerWith(NewPoint(0, 0), NewPoint(0, 1), NewPoint(0, 3), NewPoint(0, 4))

		// When: checking the player's state
		won := player.CheckState(board)

		// Then: there is no win
		assert.False(t, won)
	})

	t.Run("Upper bound stops the scan", func(t *testing.T) {
		// Given: a 3x3 board and a stray cell recorded past the last column
		player := playerWith(NewPoint(0, 1), NewPoint(0, 2), NewPoint(0, 3))

		// When: checking the player's state
		won := player.CheckState(board)

		// Then: the out of board cell is not counted
		assert.False(t, won)
	})

	t.Run("k of one wins on any move", func(t *testing.T) {
		// Given: k=1 and a single move
		player := playerWith(NewPoint(2, 1))

		// When: checking the player's state
		won := player.CheckState(NewBoard(3, 3, 1))

		// Then: the single mark wins
		assert.True(t, won)
	})

	t.Run("Empty move set", func(t *testing.T) {
		// Given: a player with no moves
		player := NewPlayer("empty")

		// Then: no win is reported
		assert.False(t, player.CheckState(board))
		assert.Equal(t, Playing, player.State())
	})

	t.Run("Drawn player keeps its state", func(t *testing.T) {
		// Given: a drawn player holding a line
		player := playerWith(NewPoint(0, 0), NewPoint(0, 1), NewPoint(0, 2))
		player.SetDraw()

		// When: checking the player's state
		won := player.CheckState(board)

		// Then: the line is reported but the state stays Draw
		assert.True(t, won)
		assert.Equal(t, Draw, player.State())
	})
}

func TestPlayer_CheckState_Bounds(t *testing.T) {
	// Given: a line that only exists by counting a cell at x=-1
	points := []Point{{-1, 0}, {0, 0}, {1, 0}}

	t.Run("Upper bound only", func(t *testing.T) {
		board := NewBoard(3, 3, 3)
		board.Bounds = BoundsUpper
		player := playerWith(points...)

		// When: checking with upper bounds only
		won := player.CheckState(board)

		// Then: the negative cell is part of the line
		assert.True(t, won)
		assert.Equal(t, Win, player.State())
	})

	t.Run("Full bounds", func(t *testing.T) {
		board := NewBoard(3, 3, 3)
		player := playerWith(points...)

		// When: checking with both bounds
		won := player.CheckState(board)

		// Then: the negative cell is ignored
		assert.False(t, won)
		assert.Equal(t, Playing, player.State())
	})
}

func TestPlayer_Undo(t *testing.T) {
	t.Run("Removes the last move", func(t *testing.T) {
		// Given: a playing player with two moves
		player := playerWith(NewPoint(0, 0), NewPoint(2, 1))

		// When: undoing
		removed, ok := player.Undo()

		// Then: exactly the last move is gone and the player keeps playing
		require.True(t, ok)
		assert.Equal(t, NewPoint(2, 1), removed)
		assert.Equal(t, []Point{{0, 0}}, player.Moves().Points())
		assert.Equal(t, Playing, player.State())
	})

	t.Run("No-op after a win", func(t *testing.T) {
		// Given: a player that has won
		player := playerWith(NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2))
		require.True(t, player.CheckState(DefaultBoard()))

		// When: undoing
		_, ok := player.Undo()

		// Then: the winning move stays
		assert.False(t, ok)
		assert.Equal(t, 3, player.Moves().Len())
		assert.True(t, player.Moves().Contains(NewPoint(2, 2)))
	})

	t.Run("No-op without moves", func(t *testing.T) {
		// Given: a player with no moves
		player := NewPlayer("empty")

		// When: undoing
		_, ok := player.Undo()

		// Then: nothing happens
		assert.False(t, ok)
		assert.Equal(t, Playing, player.State())
	})
}

func TestPlayer_SetDraw(t *testing.T) {
	t.Run("Playing becomes Draw", func(t *testing.T) {
		player := NewPlayer("a")
		player.SetDraw()
		assert.Equal(t, Draw, player.State())
	})

	t.Run("Win is final", func(t *testing.T) {
		player := NewPlayer("a")
		player.state = Win
		player.SetDraw()
		assert.Equal(t, Win, player.State())
	})
}

func TestBoard_Inside(t *testing.T) {
	board := NewBoard(3, 4, 3)

	assert.True(t, board.Inside(NewPoint(2, 3)))
	assert.False(t, board.Inside(NewPoint(3, 0)))
	assert.False(t, board.Inside(NewPoint(0, 4)))
	assert.False(t, board.Inside(NewPoint(-1, 0)))

	board.Bounds = BoundsUpper
	assert.True(t, board.Inside(NewPoint(-1, 0)))
	assert.False(t, board.Inside(NewPoint(0, 4)))
	assert.Equal(t, 12, board.Cells())
}

func TestPlayer_ZeroValue(t *testing.T) {
	// Given: a zero value player
	var player Player

	// When: moves are added and checked
	player.AddMove(NewPoint(0, 0))
	player.AddMove(NewPoint(0, 1))
	won := player.CheckState(NewBoard(1, 2, 2))

	// Then: the player behaves like one built with NewPlayer
	assert.True(t, won)
	assert.Equal(t, Win, player.State())
	assert.Equal(t, []Point{{0, 0}, {0, 1}}, player.Moves().Points())
}

func TestPlayer_Moves(t *testing.T) {
	// Given: a player with one move
	player := playerWith(NewPoint(1, 1))

	// When: the view's points are modified
	points := player.Moves().Points()
	points[0] = NewPoint(2, 2)

	// Then: the player's moves are unchanged
	assert.True(t, player.Moves().Contains(NewPoint(1, 1)))
	assert.False(t, player.Moves().Contains(NewPoint(2, 2)))
	assert.Equal(t, "{1,1}", player.Moves().String())
}
