package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick editions from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick an edition and then a
difficulty. After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  snake menu
  snake menu --difficulty easy
  snake menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	restore := logToFile()
	defer restore()

	cfg := runtimeConfig()
	current := preset

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuQuit:
			return
		case tui.MenuScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}

		chosen, ok, err := tui.RunDifficultySelector(game.Title(), current, cfg)
		if err != nil {
			logger.Error("difficulty selector failed", "err", err)
			continue
		}
		if !ok {
			continue
		}
		current = chosen
		tui.ApplyPreset(game, chosen)

		// Fresh seed for every game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("game started", "game", menuResult.GameID, "difficulty", chosen)
		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("game failed", "err", err)
		}
	}
}
