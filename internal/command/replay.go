package command

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	app "github.com/rocketscienceinc/mnk-game/internal"
	"github.com/rocketscienceinc/mnk-game/internal/config"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

type Replay struct {
	logger *slog.Logger
	conf   *config.Config

	rows   int
	cols   int
	k      int
	bounds string
}

func NewReplay(logger *slog.Logger, conf *config.Config) *Replay {
	return &Replay{logger: logger, conf: conf}
}

func (*Replay) Name() string     { return "replay" }
func (*Replay) Synopsis() string { return "Replay a move script and print the outcome" }
func (*Replay) Usage() string {
	return `replay [flags] FILE

Apply the moves in FILE, one "x y" per line and alternating between the
players. A line reading "undo" takes back the previous move. Lines starting
with # are ignored.
`
}

func (that *Replay) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&that.rows, "rows", that.conf.Board.Rows, "number of rows (m)")
	flags.IntVar(&that.cols, "cols", that.conf.Board.Cols, "number of columns (n)")
	flags.IntVar(&that.k, "k", that.conf.Board.K, "marks in a line needed to win")
	flags.StringVar(&that.bounds, "bounds", that.conf.Board.Bounds, "bounds policy: full or upper")
}

func (that *Replay) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flags.Args()) != 1 {
		flags.Usage()
		return subcommands.ExitUsageError
	}

	board, err := that.board()
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err = app.RunReplay(ctx, that.logger, board, flags.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (that *Replay) board() (entity.Board, error) {
	settings := config.Board{Rows: that.rows, Cols: that.cols, K: that.k, Bounds: that.bounds}

	if err := settings.Validate(); err != nil {
		return entity.Board{}, err
	}

	return settings.GetBoard(), nil
}
