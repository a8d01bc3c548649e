package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/roadsign/core/clock"
	"github.com/ingyamilmolinar/roadsign/core/engine"
	"github.com/ingyamilmolinar/roadsign/core/model"
	"github.com/ingyamilmolinar/roadsign/internal/assets"
	"github.com/ingyamilmolinar/roadsign/internal/audio"
	"github.com/ingyamilmolinar/roadsign/internal/config"
	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
	"github.com/ingyamilmolinar/roadsign/internal/ui"
)

func main() {
	cfg := config.Load()
	logger := game_log.NewConsole(os.Stderr, cfg.LogLevel)
	for _, w := range cfg.Warnings {
		logger.Warnf("[CONFIG] %s", w)
	}

	if err := run(cfg, logger); err != nil {
		logger.Err(err, "[GAME] exited")
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *game_log.Logger) error {
	var provider assets.Provider = assets.GeneratedProvider{}
	if cfg.AssetDir != "" {
		provider = assets.DirProvider{FS: os.DirFS(cfg.AssetDir)}
		logger.Infof("[ASSETS] Loading pictures from %s", cfg.AssetDir)
	}
	w, h, err := assets.TileSize(provider)
	if err != nil {
		return fmt.Errorf("tile size: %w", err)
	}

	logger.Infof("[GAME] Seed %d", cfg.Seed)
	board := model.NewBoard(rand.New(rand.NewSource(cfg.Seed)), w, h, logger)
	art, err := assets.Load(provider, board, logger)
	if err != nil {
		return fmt.Errorf("load pictures: %w", err)
	}

	sound := audio.NewPlayer(cfg.Mute, logger)
	defer sound.Close()

	g := ui.New(engine.New(board, clock.System, logger), art, sound, logger)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle(ui.Title)
	ebiten.SetTPS(ui.TPS)
	// The board stays on screen under the win banner.
	ebiten.SetScreenClearedEveryFrame(false)

	// Closing the window or pressing Escape makes RunGame return nil.
	return ebiten.RunGame(g)
}
