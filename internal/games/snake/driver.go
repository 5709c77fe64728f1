package snake

import "time"

// Driver schedules a session: ticks at the session cadence while playing,
// explosion frames at the frame interval while exploding, nothing after.
// It never touches a clock itself; the caller decides when to fire it.
type Driver struct {
	session *Session
	render  func()
	gen     uint64
}

// NewDriver wraps a session. render, if set, runs after every update.
func NewDriver(s *Session, render func()) *Driver {
	return &Driver{session: s, render: render}
}

// Session returns the driven session.
func (d *Driver) Session() *Session { return d.session }

// Generation identifies the current run. Callbacks scheduled for an older
// generation must be dropped.
func (d *Driver) Generation() uint64 { return d.gen }

// TickNow performs one update-then-render cycle for the current phase and
// returns the delay before the next one. ok is false once nothing more
// should be scheduled.
func (d *Driver) TickNow() (next time.Duration, ok bool) {
	switch d.session.Phase() {
	case PhasePlaying:
		d.session.Advance()
	case PhaseExploding:
		d.session.Animate()
	default:
		return 0, false
	}
	if d.render != nil {
		d.render()
	}
	return d.Next()
}

// Next returns the pending delay without running anything.
func (d *Driver) Next() (time.Duration, bool) {
	switch d.session.Phase() {
	case PhasePlaying:
		return d.session.Cadence(), true
	case PhaseExploding:
		return d.session.Rules().FrameInterval, true
	default:
		return 0, false
	}
}

// Restart resets and starts the session under a new generation. It returns
// false when the session refused the reset.
func (d *Driver) Restart() bool {
	if !d.session.Reset() {
		return false
	}
	d.gen++
	d.session.Start()
	return true
}
