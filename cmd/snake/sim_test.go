package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestSimulateIsDeterministic(t *testing.T) {
	for _, v := range snake.Variants {
		t.Run(v.ID, func(t *testing.T) {
			first, _ := simulate(v, 42, time.Hour)
			second, _ := simulate(v, 42, time.Hour)
			if first != second {
				t.Errorf("Same seed gave %+v and %+v", first, second)
			}
		})
	}
}

func TestSimulateStopsAtLimit(t *testing.T) {
	res, clock := simulate(snake.Variants[0], 3, 500*time.Millisecond)

	if res.Cause != snake.CauseNone {
		t.Skipf("Autopilot died early (%s)", res.Cause)
	}
	// Ticks at 0, 100, ..., 500ms
	if res.Ticks != 6 {
		t.Errorf("Ticks = %d, expected 6", res.Ticks)
	}
	if clock.Now() != 600*time.Millisecond {
		t.Errorf("Now = %v, expected 600ms", clock.Now())
	}
}

func TestAutopilotEats(t *testing.T) {
	res, _ := simulate(snake.Variants[0], 42, time.Hour)
	if res.Score == 0 {
		t.Error("Autopilot should reach at least one food")
	}
}

func TestAutopilotAvoidsWall(t *testing.T) {
	s := snake.NewSession(snake.DefaultRules(), 1)
	s.Start()
	pilot := newAutopilot(1)

	// Run into the right wall unless steered away
	for range 40 {
		pilot.steer(s)
		s.Advance()
		if s.Ended() {
			break
		}
	}
	if s.Cause() == snake.CauseWall {
		t.Error("Autopilot drove into the wall")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}
