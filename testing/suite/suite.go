package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/mnk-game/internal/config"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config
}

// New returns a context bound to the test and a suite with a silent logger
// and the default board configuration.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf := &config.Config{
		LogLevel: "debug",
		Board: config.Board{
			Rows:   entity.DefaultRows,
			Cols:   entity.DefaultCols,
			K:      entity.DefaultK,
			Bounds: string(entity.BoundsFull),
		},
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
	}
}
