package lumen

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// AttachGameScene buffers an attach of the single game-scene slot. Applied at
// the next stage boundary. Attaching while a scene is already present panics
// at flush time; detach first.
func (cmd *Commands) AttachGameScene(scene GameScene) *Commands {
	cmd.app.pendingAttach = append(cmd.app.pendingAttach, scene)
	return cmd
}

// DetachGameScene buffers a detach of the game-scene slot. No-op when empty.
func (cmd *Commands) DetachGameScene() *Commands {
	cmd.app.pendingDetach = true
	return cmd
}

// MarkAssetsLoaded opens the loading gate from inside a system. The gate is
// latched per frame, so gated systems start running on the next frame.
func (cmd *Commands) MarkAssetsLoaded() *Commands {
	cmd.app.MarkAssetsLoaded()
	return cmd
}

func (cmd *Commands) Stop() *Commands {
	cmd.app.Stop()
	return cmd
}
