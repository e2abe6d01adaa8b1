package lumen

import (
	"time"
)

// Clock is the monotonic elapsed-time source, in seconds since loop start.
type Clock interface {
	Elapsed() float64
}

type systemClock struct {
	start time.Time
}

func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}

// ClockSource wraps the Clock so it can live in the resource map.
type ClockSource struct {
	Source Clock
}

// FrameClock carries per-frame delta time, in seconds. Dt is computed exactly
// once per frame; Last is updated immediately after the read, so the first
// frame's Dt equals the raw elapsed time.
type FrameClock struct {
	Elapsed float64
	Last    float64
	Dt      float64
	Frame   uint64
}

type TimeModule struct {
	// Source overrides the real clock; tests install a deterministic fake.
	Source Clock
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	source := mod.Source
	if source == nil {
		source = NewSystemClock()
	}

	cmd.AddResources(
		&ClockSource{Source: source},
		&FrameClock{},
	)
	app.UseSystem(
		System(frameClockSystem).
			InStage(Prelude).
			RunAlways(),
	)
}

func frameClockSystem(clock *ClockSource, fc *FrameClock) {
	elapsed := clock.Source.Elapsed()

	fc.Dt = elapsed - fc.Last
	fc.Last = elapsed
	fc.Elapsed = elapsed
	fc.Frame++
}
