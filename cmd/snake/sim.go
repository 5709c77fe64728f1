package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSimVariant string
	flagSimUntil   time.Duration
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Play one game on virtual time with a seeded autopilot and print the result.

The same seed, edition and config always produce the same game, so a seed
can be shared to reproduce a run.

Examples:
  snake sim --seed 42
  snake sim --variant snake_classic --until 10m
  snake sim --seed 7 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimVariant, "variant", "snake", "Edition to simulate")
	simCmd.Flags().DurationVar(&flagSimUntil, "until", time.Hour, "Virtual time limit")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the finished run in the scores database")
}

func runSim(_ *cobra.Command, _ []string) error {
	v, ok := snake.VariantByID(flagSimVariant)
	if !ok {
		return fmt.Errorf("unknown edition %q (run 'snake list' to see editions)", flagSimVariant)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, clock := simulate(v, seed, flagSimUntil)

	fmt.Printf("%s, seed %d\n", v.Title, seed)
	fmt.Printf("  Score:   %d\n", res.Score)
	fmt.Printf("  Length:  %d\n", res.Length)
	fmt.Printf("  Ticks:   %d\n", res.Ticks)
	fmt.Printf("  Elapsed: %s (virtual)\n", clock.Now())
	if res.Cause == snake.CauseNone {
		fmt.Println("  Still alive at the time limit")
		return nil
	}
	fmt.Printf("  Cause:   %s\n", res.Cause)

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := core.Outcome{Score: res.Score, Length: res.Length, Cause: res.Cause.String(), Ticks: res.Ticks}
	if _, err := store.SaveRun(v.ID, out); err != nil {
		return err
	}
	logger.Info("run saved", "game", v.ID, "score", res.Score)
	return nil
}

// simulate plays one game of v on virtual time until it ends or until passes.
func simulate(v snake.Variant, seed int64, until time.Duration) (snake.Result, *snake.ManualClock) {
	rules := snake.RulesFromConfig(snake.PresetConfig(preset), v.Features)
	s := snake.NewSession(rules, seed)
	s.Start()

	pilot := newAutopilot(seed)
	clock := &snake.ManualClock{
		BeforeTick: func(time.Duration) { pilot.steer(s) },
	}
	clock.Run(snake.NewDriver(s, nil), until)

	logger.Debug("simulation finished", "ticks", s.Tick(), "fired", clock.Fired(), "phase", s.Phase())
	return s.Result(), clock
}

// autopilot heads for the food and otherwise picks a random safe turn.
type autopilot struct {
	rng *rand.Rand
}

func newAutopilot(seed int64) *autopilot {
	return &autopilot{rng: rand.New(rand.NewSource(seed))}
}

// steer queues at most one turn for the coming tick.
func (a *autopilot) steer(s *snake.Session) {
	if s.Phase() != snake.PhasePlaying {
		return
	}

	head, food := s.Head(), s.Food()
	var wanted []snake.Direction
	switch {
	case food.X > head.X:
		wanted = append(wanted, snake.DirRight)
	case food.X < head.X:
		wanted = append(wanted, snake.DirLeft)
	}
	switch {
	case food.Y > head.Y:
		wanted = append(wanted, snake.DirDown)
	case food.Y < head.Y:
		wanted = append(wanted, snake.DirUp)
	}
	for _, d := range wanted {
		if d != s.Heading().Opposite() && a.safe(s, d) {
			s.Turn(d)
			return
		}
	}
	if a.safe(s, s.Heading()) {
		return
	}

	options := []snake.Direction{(s.Heading() + 1) % 4, (s.Heading() + 3) % 4}
	a.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	for _, d := range options {
		if a.safe(s, d) {
			s.Turn(d)
			return
		}
	}
}

// safe reports whether one step towards d stays clear of walls, the body
// and obstacles. The tail is treated as occupied.
func (a *autopilot) safe(s *snake.Session, d snake.Direction) bool {
	next := s.Head().Add(d.Vector())
	if !s.Rules().InBounds(next) {
		return false
	}
	for _, c := range s.Snake() {
		if c == next {
			return false
		}
	}
	for _, c := range s.Obstacles() {
		if c == next {
			return false
		}
	}
	return true
}
