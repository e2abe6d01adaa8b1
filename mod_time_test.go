package lumen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockDeltaTime(t *testing.T) {
	clock := &fakeClock{times: []float64{0.25, 0.3, 0.3, 0.45}}
	app := NewAppBuilder().
		UseModule(TimeModule{Source: clock}).
		Build()
	fc := ResourceOf[FrameClock](app)

	// First frame measures against zero, not against the first read.
	app.step()
	assert.InDelta(t, 0.25, fc.Dt, 1e-9)
	assert.InDelta(t, 0.25, fc.Elapsed, 1e-9)

	app.step()
	assert.InDelta(t, 0.05, fc.Dt, 1e-9)

	// A stalled clock yields a zero delta, never a negative one.
	app.step()
	assert.InDelta(t, 0.0, fc.Dt, 1e-9)

	app.step()
	assert.InDelta(t, 0.15, fc.Dt, 1e-9)
	assert.Equal(t, uint64(4), fc.Frame)
}

func TestFrameClockOneReadPerFrame(t *testing.T) {
	clock := &fakeClock{times: ramp(50, 0.01)}
	app := NewAppBuilder().
		UseModule(TimeModule{Source: clock}).
		Build()

	for i := 0; i < 50; i++ {
		app.step()
	}

	assert.Equal(t, 50, clock.reads)
}

func TestSystemClockMonotonic(t *testing.T) {
	clock := NewSystemClock()

	prev := clock.Elapsed()
	for i := 0; i < 100; i++ {
		next := clock.Elapsed()
		if next < prev {
			t.Fatalf("clock went backwards: %f -> %f", prev, next)
		}
		prev = next
	}
}
