package lumen

// EaseFunc maps normalized progress t in [0,1] to an eased value.
type EaseFunc func(t float32) float32

func EaseLinear(t float32) float32 { return t }

func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// Tween interpolates a single scalar over a fixed duration, pushing each
// eased value through Apply.
type Tween struct {
	From     float32
	To       float32
	Duration float32 // seconds, must be > 0
	Ease     EaseFunc
	Apply    func(value float32)
	OnDone   func()

	elapsed float32
}

// advance returns true when the tween has completed.
func (tw *Tween) advance(dt float32) bool {
	tw.elapsed += dt
	t := tw.elapsed / tw.Duration
	if t >= 1 {
		t = 1
	}

	ease := tw.Ease
	if ease == nil {
		ease = EaseLinear
	}
	value := tw.From + (tw.To-tw.From)*ease(t)
	if tw.Apply != nil {
		tw.Apply(value)
	}

	if t >= 1 {
		if tw.OnDone != nil {
			tw.OnDone()
		}
		return true
	}
	return false
}

// TweenSet holds the pending interpolations. Advanced first in the gated
// frame body, before physics, because tweens may mutate transforms that
// physics and controls read.
type TweenSet struct {
	tweens []*Tween
}

func (ts *TweenSet) Add(tw *Tween) {
	if tw.Duration <= 0 {
		panic("tween duration must be positive")
	}
	ts.tweens = append(ts.tweens, tw)
}

func (ts *TweenSet) Len() int {
	return len(ts.tweens)
}

// Advance steps every pending tween and drops the completed ones, preserving
// order for the rest.
func (ts *TweenSet) Advance(dt float32) {
	alive := ts.tweens[:0]
	for _, tw := range ts.tweens {
		if !tw.advance(dt) {
			alive = append(alive, tw)
		}
	}
	ts.tweens = alive
}

type TweenModule struct{}

func (mod TweenModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&TweenSet{})
	app.UseSystem(
		System(tweenSystem).
			InStage(Update).
			WhenReady(),
	)
}

func tweenSystem(tweens *TweenSet, fc *FrameClock) {
	dt := float32(fc.Dt)
	if dt <= 0 {
		return
	}
	tweens.Advance(dt)
}
