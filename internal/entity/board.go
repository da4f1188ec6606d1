package entity

import "fmt"

// Bounds selects how a scan decides that a point left the board.
type Bounds string

const (
	// BoundsUpper only rejects points with x >= m or y >= n.
	BoundsUpper Bounds = "upper"
	// BoundsFull rejects points outside [0,m) x [0,n).
	BoundsFull Bounds = "full"
)

const (
	DefaultRows = 3
	DefaultCols = 3
	DefaultK    = 3
)

// Board describes an m,n,k-game: M rows, N columns, K marks in a line to win.
type Board struct {
	M      int    `json:"m"`
	N      int    `json:"n"`
	K      int    `json:"k"`
	Bounds Bounds `json:"bounds"`
}

func NewBoard(m, n, k int) Board {
	return Board{M: m, N: n, K: k, Bounds: BoundsFull}
}

func DefaultBoard() Board {
	return NewBoard(DefaultRows, DefaultCols, DefaultK)
}

// Cells is the number of cells on the board.
func (that Board) Cells() int {
	return that.M * that.N
}

// Inside reports whether point passes the board's bounds policy.
func (that Board) Inside(point Point) bool {
	if point.X >= that.M || point.Y >= that.N {
		return false
	}

	if that.Bounds == BoundsUpper {
		return true
	}

	return point.X >= 0 && point.Y >= 0
}

func (that Board) String() string {
	return fmt.Sprintf("%dx%d k=%d", that.M, that.N, that.K)
}
