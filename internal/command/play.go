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
)

type Play struct {
	logger *slog.Logger
	conf   *config.Config
}

func NewPlay(logger *slog.Logger, conf *config.Config) *Play {
	return &Play{logger: logger, conf: conf}
}

func (*Play) Name() string     { return "play" }
func (*Play) Synopsis() string { return "Play an m,n,k-game between two players on this terminal" }
func (*Play) Usage() string {
	return `play

Prompt for the board size and the win threshold, then alternate moves
between player one and player two. Moves are entered as "x y".
`
}

func (that *Play) SetFlags(*flag.FlagSet) {}

func (that *Play) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := app.RunApp(ctx, that.logger, that.conf, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "play: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
