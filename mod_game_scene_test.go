package lumen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSceneSlotExplicitPresence(t *testing.T) {
	slot := &GameSceneSlot{}

	_, ok := slot.Get()
	assert.False(t, ok)

	scene := &spyGameScene{}
	slot.set(scene)

	got, ok := slot.Get()
	require.True(t, ok)
	assert.Same(t, scene, got)

	slot.clear()
	_, ok = slot.Get()
	assert.False(t, ok)
}

func TestGameSceneSlotSingleOccupancy(t *testing.T) {
	slot := &GameSceneSlot{}
	slot.set(&spyGameScene{})

	require.Panics(t, func() {
		slot.set(&spyGameScene{})
	})
}

func TestGameSceneSlotNodeVisibility(t *testing.T) {
	app := NewAppBuilder().
		UseModule(SceneModule{}, GameSceneModule{}).
		Build()

	slot := ResourceOf[GameSceneSlot](app)
	require.NotNil(t, slot.Node())
	assert.False(t, slot.Node().Visible, "empty slot node starts hidden")

	app.Commands().AttachGameScene(&spyGameScene{})
	app.FlushCommands()
	assert.True(t, slot.Node().Visible)

	app.Commands().DetachGameScene()
	app.FlushCommands()
	assert.False(t, slot.Node().Visible)
}

func TestDetachThenAttachSameStage(t *testing.T) {
	app := NewAppBuilder().
		UseModule(SceneModule{}, GameSceneModule{}).
		Build()

	first := &spyGameScene{}
	app.Commands().AttachGameScene(first)
	app.FlushCommands()

	// Swap in one flush: detach applies before the buffered attach.
	second := &spyGameScene{}
	app.Commands().DetachGameScene()
	app.Commands().AttachGameScene(second)
	app.FlushCommands()

	got, ok := ResourceOf[GameSceneSlot](app).Get()
	require.True(t, ok)
	assert.Same(t, second, got)
}
