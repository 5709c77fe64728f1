// snake plays Snake in the terminal, locally or over SSH.
//
// Usage:
//
//	snake list               - List available editions
//	snake play [edition]     - Play an edition (default: snake)
//	snake menu               - Pick editions interactively
//	snake serve              - Start SSH server for remote play
//	snake scores [edition]   - Show high scores
//	snake sim                - Run a headless game with an autopilot
//	snake config             - Print game settings as YAML
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Load game settings from a YAML file
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	// Resolved in PersistentPreRunE
	logger = log.Default()
	preset = config.DifficultyNormal
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Snake in your terminal, with obstacles, power-ups and a crash animation.

Available commands:
  list     - Show all editions
  play     - Play an edition directly
  menu     - Interactive edition picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless game driven by an autopilot
  config   - Print game settings as YAML

Examples:
  snake play
  snake play snake_classic --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake sim --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger, loads the game config and resolves the preset.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	log.SetDefault(logger)

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	snake.SetConfig(cfg)

	preset, err = config.ParsePreset(flagDifficulty)
	return err
}

// logToFile sends log output to ~/.snake/snake.log while a full-screen TUI
// owns the terminal. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create log directory", "err", err)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "snake.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("cannot open log file", "err", err)
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
