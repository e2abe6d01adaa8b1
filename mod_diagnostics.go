package lumen

import (
	"time"
)

const diagnosticsWindow = 120

// Diagnostics is the frame-timing overlay state. A span wraps every frame
// body, gate open or closed; visibility only controls presentation, never
// measurement.
type Diagnostics struct {
	visible bool

	spanOpen  bool
	spanStart time.Time
	now       func() time.Time

	FrameTime time.Duration
	Spans     uint64

	samples [diagnosticsWindow]time.Duration
	count   int
	next    int
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{now: time.Now}
}

func (d *Diagnostics) Visible() bool {
	return d.visible
}

func (d *Diagnostics) SetVisible(visible bool) {
	d.visible = visible
}

func (d *Diagnostics) BeginSpan() {
	d.spanOpen = true
	d.spanStart = d.now()
}

func (d *Diagnostics) EndSpan() {
	if !d.spanOpen {
		return
	}
	d.spanOpen = false
	d.FrameTime = d.now().Sub(d.spanStart)
	d.Spans++

	d.samples[d.next] = d.FrameTime
	d.next = (d.next + 1) % diagnosticsWindow
	if d.count < diagnosticsWindow {
		d.count++
	}
}

func (d *Diagnostics) AvgFrameTime() time.Duration {
	if d.count == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < d.count; i++ {
		total += d.samples[i]
	}
	return total / time.Duration(d.count)
}

func (d *Diagnostics) FPS() float64 {
	avg := d.AvgFrameTime()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// DiagnosticsModule installs the overlay, initially hidden; the loading gate
// reveals it.
type DiagnosticsModule struct{}

func (mod DiagnosticsModule) Install(app *App, cmd *Commands) {
	diag := NewDiagnostics()
	cmd.AddResources(diag)

	app.Lifecycle().OnReady(func() {
		diag.SetVisible(true)
	})

	app.UseSystem(
		System(diagnosticsBeginSystem).
			InStage(Prelude).
			RunAlways(),
	)
	app.UseSystem(
		System(diagnosticsEndSystem).
			InStage(Finale).
			RunAlways(),
	)
}

func diagnosticsBeginSystem(diag *Diagnostics) {
	diag.BeginSpan()
}

func diagnosticsEndSystem(diag *Diagnostics) {
	diag.EndSpan()
}
