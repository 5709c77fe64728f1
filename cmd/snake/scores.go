package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagClearScores bool
	flagRecent      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [edition]",
	Short: "Show high scores for an edition",
	Long: `Display the top runs and totals for an edition (default: snake).

Examples:
  snake scores
  snake scores snake_classic --limit 5
  snake scores snake_obstacles --clear
  snake scores --recent`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every stored run of the edition")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs across all editions")
}

func runScores(_ *cobra.Command, args []string) error {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagRecent {
		return printRecent(store, flagScoresLimit)
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
		return nil
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			r.Cause,
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	fmt.Println(renderTable([]string{"Rank", "Score", "Length", "Cause", "Date"}, rows))

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		printStats(stats)
	}
	if counts, err := store.CauseCounts(gameID); err == nil {
		printCauses(counts)
	}
	return nil
}

func printStats(s *storage.GameStats) {
	fmt.Printf("Best: %d   Games: %d   Average: %.1f   Longest snake: %d\n",
		s.HighScore, s.GamesCount, s.AvgScore, s.MaxLength)
}

// printCauses lists deaths by cause, most frequent first.
func printCauses(counts []storage.CauseCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Print("Deaths:")
	for _, c := range counts {
		fmt.Printf("  %s %d", c.Cause, c.Count)
	}
	fmt.Println()
}

// printRecent lists the latest runs of every edition, newest first.
func printRecent(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{r.GameID, strconv.Itoa(r.Score), strconv.Itoa(r.Length), r.Cause, r.CreatedAt.Format("2006-01-02 15:04")}
	}
	fmt.Println(renderTable([]string{"Edition", "Score", "Length", "Cause", "Date"}, rows))
	return nil
}
