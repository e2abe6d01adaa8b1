package lumen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsSpans(t *testing.T) {
	diag := NewDiagnostics()

	current := time.Unix(0, 0)
	diag.now = func() time.Time { return current }

	diag.BeginSpan()
	current = current.Add(16 * time.Millisecond)
	diag.EndSpan()

	assert.Equal(t, uint64(1), diag.Spans)
	assert.Equal(t, 16*time.Millisecond, diag.FrameTime)

	diag.BeginSpan()
	current = current.Add(32 * time.Millisecond)
	diag.EndSpan()

	assert.Equal(t, uint64(2), diag.Spans)
	assert.Equal(t, 24*time.Millisecond, diag.AvgFrameTime())
	assert.InDelta(t, 1000.0/24.0, diag.FPS(), 0.5)
}

func TestDiagnosticsEndWithoutBegin(t *testing.T) {
	diag := NewDiagnostics()

	diag.EndSpan()
	assert.Equal(t, uint64(0), diag.Spans)
}

func TestDiagnosticsRollingWindow(t *testing.T) {
	diag := NewDiagnostics()

	current := time.Unix(0, 0)
	diag.now = func() time.Time { return current }

	// Fill the window with slow frames, then overwrite it with fast ones.
	for i := 0; i < diagnosticsWindow; i++ {
		diag.BeginSpan()
		current = current.Add(100 * time.Millisecond)
		diag.EndSpan()
	}
	for i := 0; i < diagnosticsWindow; i++ {
		diag.BeginSpan()
		current = current.Add(10 * time.Millisecond)
		diag.EndSpan()
	}

	assert.Equal(t, 10*time.Millisecond, diag.AvgFrameTime(), "old samples age out of the window")
}

func TestDiagnosticsVisibility(t *testing.T) {
	diag := NewDiagnostics()
	assert.False(t, diag.Visible())

	diag.SetVisible(true)
	assert.True(t, diag.Visible())

	// Measurement is independent of visibility.
	diag.BeginSpan()
	diag.EndSpan()
	assert.Equal(t, uint64(1), diag.Spans)
}

func TestDiagnosticsFPSWithoutSamples(t *testing.T) {
	diag := NewDiagnostics()
	assert.Equal(t, 0.0, diag.FPS())
}
