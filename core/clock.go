package core

// AnimationClock owns the simulation time accumulator for the ocean
// surface. The accumulator is monotonic non-decreasing: it advances only
// while animation is enabled and freezes in place while paused. Resuming
// continues from the paused value, no elapsed real time is backfilled.
type AnimationClock struct {
	elapsed float64
}

// NewAnimationClock creates a clock starting at t=0.
func NewAnimationClock() *AnimationClock {
	return &AnimationClock{}
}

// Advance moves simulation time forward by dt*timeScale if animate is
// set and returns the new accumulator value. Negative dt is ignored so
// a misbehaving frame timer can never rewind the surface.
func (c *AnimationClock) Advance(dt float64, animate bool, timeScale float64) float64 {
	if animate && dt > 0 {
		c.elapsed += dt * timeScale
	}
	return c.elapsed
}

// Now returns the current accumulator value without advancing it.
func (c *AnimationClock) Now() float64 {
	return c.elapsed
}
