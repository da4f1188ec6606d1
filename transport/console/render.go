package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rocketscienceinc/mnk-game/internal/entity"
	"github.com/rocketscienceinc/mnk-game/internal/tictactoe"
)

// maxRenderCells keeps large boards to the move lists only.
const maxRenderCells = 400

const (
	glyphOne   = "X"
	glyphTwo   = "O"
	glyphEmpty = "."
)

// RenderBoard writes the grid with rows as x and columns as y.
func RenderBoard(out io.Writer, session *tictactoe.Session) {
	board := session.Board
	if board.Cells() > maxRenderCells {
		return
	}

	one, two := session.Players()

	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	fmt.Fprint(w, "\t")
	for y := 0; y < board.N; y++ {
		fmt.Fprintf(w, "%d\t", y)
	}
	fmt.Fprintln(w)

	for x := 0; x < board.M; x++ {
		fmt.Fprintf(w, "%d\t", x)
		for y := 0; y < board.N; y++ {
			point := entity.NewPoint(x, y)
			switch {
			case one.Moves().Contains(point):
				fmt.Fprintf(w, "%s\t", glyphOne)
			case two.Moves().Contains(point):
				fmt.Fprintf(w, "%s\t", glyphTwo)
			default:
				fmt.Fprintf(w, "%s\t", glyphEmpty)
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)
}
