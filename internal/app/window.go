// Package app wires the window view: counter, music and the Ebitengine loop.
package app

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heartclock/internal/audio"
	"github.com/iburimskiy/heartclock/internal/config"
	"github.com/iburimskiy/heartclock/internal/counter"
	"github.com/iburimskiy/heartclock/internal/game"
	"github.com/iburimskiy/heartclock/internal/logger"
	"github.com/iburimskiy/heartclock/internal/music"
)

// RunWindow opens the window and blocks until it is closed.
func RunWindow(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := counter.New(cfg.Reference, nil)
	c.Start(ctx)

	player := audio.NewPlayer(cfg.VolumeOrDefault(), log)
	defer func() {
		if err := player.Close(); err != nil {
			log.Warn("closing player", "error", err)
		}
	}()
	if cfg.Music != "" {
		if err := player.Load(cfg.Music); err != nil {
			// Playback is optional; the view starts paused.
			log.Warn("music not loaded", "path", cfg.Music, "error", err)
		}
	}

	toggle := music.NewToggle(player, log)
	log.Debug("autoplay attempted", "indicator", toggle.Autoplay().String())

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("heartclock - Space: music, O: choose track, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, c, player, toggle, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("window closed", "ticks", c.Ticks(), "cancelled", ctx.Err() != nil)
	return nil
}
