package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports game events to a logger. Spawns and landings are
// debug-level; cleared rows and game over are info-level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) logHooks {
	return logHooks{logger: l}
}

func (h logHooks) OnSpawn(_ context.Context, gameID, kind string) {
	h.logger.Debug("spawn", "game", gameID, "kind", kind)
}

func (h logHooks) OnLand(_ context.Context, gameID, reason string, cleared int) {
	h.logger.Debug("land", "game", gameID, "reason", reason, "cleared", cleared)
	if cleared > 0 {
		h.logger.Info("cleared rows", "game", gameID, "cleared", cleared)
	}
}

func (h logHooks) OnGameOver(_ context.Context, gameID string, pieces, lines int, d time.Duration) {
	h.logger.Info("game over", "game", gameID, "pieces", pieces, "lines", lines, "duration", d.Round(time.Millisecond))
}
