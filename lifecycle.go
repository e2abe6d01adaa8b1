package lumen

// Lifecycle is the loading gate. It starts closed; MarkReady opens it exactly
// once and fires the registered hooks in registration order. The transition
// is irreversible for the lifetime of the process, and duplicate MarkReady
// calls are idempotent: the flag stays true and hooks never fire twice.
type Lifecycle struct {
	ready   bool
	onReady []func()
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

func (lc *Lifecycle) Ready() bool {
	return lc.ready
}

// OnReady registers a hook to run when the gate opens. Registering after the
// gate has already opened runs the hook immediately; late-installed modules
// must not miss the transition.
func (lc *Lifecycle) OnReady(hook func()) {
	if lc.ready {
		hook()
		return
	}
	lc.onReady = append(lc.onReady, hook)
}

func (lc *Lifecycle) MarkReady() {
	if lc.ready {
		return
	}
	lc.ready = true

	for _, hook := range lc.onReady {
		hook()
	}
	lc.onReady = nil
}
