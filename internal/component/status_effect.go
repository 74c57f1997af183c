// internal/component/status_effect.go
package component

import "go-haunted-house/internal/defs"

// StatusSet is a bit set of status kinds.
type StatusSet uint8

func (s StatusSet) Has(k defs.StatusKind) bool {
	return s&bit(k) != 0
}

func (s StatusSet) with(k defs.StatusKind) StatusSet {
	return s | bit(k)
}

func bit(k defs.StatusKind) StatusSet {
	return 1 << uint(k)
}

// StatusClock holds the independent countdowns of a mortal's timed overlays.
// Restarting a kind overrides its previous countdown; nothing stacks.
type StatusClock struct {
	StunTimer    float64
	FreezeTimer  float64
	PossessTimer float64
	SlowTimer    float64
	// SlowFactor — множитель скорости, пока действует замедление (1 — без эффекта).
	SlowFactor float64
}

// NewStatusClock returns a clock with no active overlays.
func NewStatusClock() StatusClock {
	return StatusClock{SlowFactor: 1}
}

// Start (re)starts the countdown of kind. Slow keeps its current multiplier;
// use StartSlow to change it. Non-positive durations are ignored.
func (c *StatusClock) Start(kind defs.StatusKind, duration float64) {
	if duration <= 0 {
		return
	}
	switch kind {
	case defs.StatusStun:
		c.StunTimer = duration
	case defs.StatusFreeze:
		c.FreezeTimer = duration
	case defs.StatusPossess:
		c.PossessTimer = duration
	case defs.StatusSlow:
		c.SlowTimer = duration
	}
}

// StartSlow (re)starts the slow countdown with a new speed multiplier.
func (c *StatusClock) StartSlow(multiplier, duration float64) {
	if duration <= 0 {
		return
	}
	c.SlowFactor = multiplier
	c.SlowTimer = duration
}

// Active reports whether kind currently has time left.
func (c *StatusClock) Active(kind defs.StatusKind) bool {
	switch kind {
	case defs.StatusStun:
		return c.StunTimer > 0
	case defs.StatusFreeze:
		return c.FreezeTimer > 0
	case defs.StatusPossess:
		return c.PossessTimer > 0
	case defs.StatusSlow:
		return c.SlowTimer > 0
	}
	return false
}

// Remaining returns the time left on kind, zero when inactive.
func (c *StatusClock) Remaining(kind defs.StatusKind) float64 {
	switch kind {
	case defs.StatusStun:
		return c.StunTimer
	case defs.StatusFreeze:
		return c.FreezeTimer
	case defs.StatusPossess:
		return c.PossessTimer
	case defs.StatusSlow:
		return c.SlowTimer
	}
	return 0
}

// SpeedMultiplier is the current slow factor, 1 when not slowed.
func (c *StatusClock) SpeedMultiplier() float64 {
	if c.SlowTimer > 0 {
		return c.SlowFactor
	}
	return 1
}

// Tick advances every active countdown by dt and returns the kinds that ran
// out during this step.
func (c *StatusClock) Tick(dt float64) StatusSet {
	var expired StatusSet
	tick := func(timer *float64, kind defs.StatusKind) {
		if *timer <= 0 {
			return
		}
		*timer -= dt
		if *timer <= 0 {
			*timer = 0
			expired = expired.with(kind)
		}
	}
	tick(&c.StunTimer, defs.StatusStun)
	tick(&c.FreezeTimer, defs.StatusFreeze)
	tick(&c.PossessTimer, defs.StatusPossess)
	tick(&c.SlowTimer, defs.StatusSlow)
	if expired.Has(defs.StatusSlow) {
		c.SlowFactor = 1
	}
	return expired
}

// Clear drops every overlay without reporting expiry.
func (c *StatusClock) Clear() {
	*c = NewStatusClock()
}
