package snake

import "time"

// ManualClock fires a driver on virtual time, for tests and headless runs.
type ManualClock struct {
	now   time.Duration
	fired int

	// BeforeTick, if set, runs at each firing time before the driver,
	// which is where input for that tick is injected.
	BeforeTick func(now time.Duration)
}

// Now returns the virtual time elapsed.
func (c *ManualClock) Now() time.Duration { return c.now }

// Fired returns how many times the driver has been fired.
func (c *ManualClock) Fired() int { return c.fired }

// Run fires d immediately and then after every delay it asks for, until it
// stops scheduling or the next firing would land after until.
func (c *ManualClock) Run(d *Driver, until time.Duration) {
	for c.now <= until {
		if _, ok := d.Next(); !ok {
			return
		}
		if c.BeforeTick != nil {
			c.BeforeTick(c.now)
		}
		next, ok := d.TickNow()
		c.fired++
		if !ok {
			return
		}
		c.now += next
	}
}
