package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [edition]",
	Short: "Play an edition",
	Long: `Start playing the given edition, or the complete one when none is named.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R                 - Restart (after game over)
  Esc               - Leave (when paused or over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start
  normal - Settings as configured
  hard   - Faster start, more obstacles
  fixed  - No speed-up as the score grows

Examples:
  snake play
  snake play snake_classic
  snake play --difficulty hard
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown edition %q (run 'snake list' to see editions)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	tui.ApplyPreset(game, preset)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without storage
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	restore := logToFile()
	defer restore()

	logger.Info("game started", "game", gameID, "difficulty", preset)
	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
