package world

type Clock struct {
	now Tick
}

func NewClock(start Tick) *Clock {
	if start < 0 {
		start = 0
	}
	return &Clock{now: start}
}

func (c *Clock) Now() Tick {
	return c.now
}

func (c *Clock) Advance() Tick {
	c.now++
	return c.now
}
