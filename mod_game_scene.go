package lumen

import "fmt"

// GameScene is the per-frame game-logic unit the host application plugs in.
type GameScene interface {
	Update(dt float64)
}

// GameSceneSlot holds at most one attached GameScene. The slot is explicit:
// callers go through Get/set/clear instead of poking a nullable field, so "no
// scene attached" is always an observable state, never a silent nil.
type GameSceneSlot struct {
	scene    GameScene
	occupied bool
	node     *Node
}

// Get returns the attached scene, if any.
func (slot *GameSceneSlot) Get() (GameScene, bool) {
	if !slot.occupied {
		return nil, false
	}
	return slot.scene, true
}

// Node returns the scene-graph node reserved for game-scene content.
func (slot *GameSceneSlot) Node() *Node {
	return slot.node
}

func (slot *GameSceneSlot) set(scene GameScene) {
	if slot.occupied {
		panic(fmt.Sprintf("game scene slot already occupied by %T", slot.scene))
	}
	slot.scene = scene
	slot.occupied = true
	if slot.node != nil {
		slot.node.Visible = true
	}
}

func (slot *GameSceneSlot) clear() {
	slot.scene = nil
	slot.occupied = false
	if slot.node != nil {
		slot.node.Visible = false
	}
}

// GameSceneModule owns the slot and its update system. Installed after the
// camera module so the slot update runs after controls within PostUpdate.
type GameSceneModule struct{}

func (mod GameSceneModule) Install(app *App, cmd *Commands) {
	graph := ResourceOf[SceneGraph](app)

	node := NewNode("game-scene")
	node.Visible = false
	graph.Root.Attach(node)

	cmd.AddResources(&GameSceneSlot{node: node})

	app.UseSystem(
		System(gameSceneSystem).
			InStage(PostUpdate).
			WhenReady(),
	)
}

func gameSceneSystem(slot *GameSceneSlot, fc *FrameClock) {
	if scene, ok := slot.Get(); ok {
		scene.Update(fc.Dt)
	}
}
