package lumen

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypeAmbient     LightType = 0
	LightTypeDirectional LightType = 1
)

type AmbientLight struct {
	Color     [3]float32
	Intensity float32

	node *Node
}

func (l *AmbientLight) Node() *Node {
	return l.node
}

type DirectionalLight struct {
	Color     [3]float32
	Intensity float32
	Position  mgl32.Vec3

	CastShadow    bool
	ShadowMapSize int
	ShadowNear    float32
	ShadowFar     float32

	node *Node
}

func (l *DirectionalLight) Node() *Node {
	return l.node
}

// Direction points from the light position toward the origin.
func (l *DirectionalLight) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return l.Position.Mul(-1).Normalize()
}

// DirectionalLightHelper visualizes the light direction as a line gizmo.
type DirectionalLightHelper struct {
	Line Gizmo
	node *Node
}

func (h *DirectionalLightHelper) Node() *Node {
	return h.node
}

func NewDirectionalLightHelper(light *DirectionalLight) *DirectionalLightHelper {
	return &DirectionalLightHelper{
		Line: NewGizmoLine(light.Position, mgl32.Vec3{0, 0, 0}, [4]float32{1, 1, 0, 1}),
		node: NewNode("directional-light-helper"),
	}
}

// LightingModule is the static light setup: one ambient and one
// shadow-casting directional light, attached to the scene graph root. Not
// part of the dynamic loop.
type LightingModule struct {
	AmbientColor     [3]float32
	AmbientIntensity float32

	DirectionalColor     [3]float32
	DirectionalIntensity float32
	DirectionalPosition  mgl32.Vec3
}

func (mod LightingModule) Install(app *App, cmd *Commands) {
	graph := ResourceOf[SceneGraph](app)

	ambientColor := mod.AmbientColor
	if ambientColor == ([3]float32{}) {
		ambientColor = [3]float32{1, 1, 1}
	}
	ambientIntensity := mod.AmbientIntensity
	if ambientIntensity == 0 {
		ambientIntensity = 0.4
	}

	ambient := &AmbientLight{
		Color:     ambientColor,
		Intensity: ambientIntensity,
		node:      NewNode("ambient-light"),
	}
	graph.Root.Attach(ambient.node)

	directionalColor := mod.DirectionalColor
	if directionalColor == ([3]float32{}) {
		directionalColor = [3]float32{1, 1, 1}
	}
	directionalIntensity := mod.DirectionalIntensity
	if directionalIntensity == 0 {
		directionalIntensity = 1.8
	}
	directionalPosition := mod.DirectionalPosition
	if directionalPosition == (mgl32.Vec3{}) {
		directionalPosition = mgl32.Vec3{5, 10, 7.5}
	}

	directional := &DirectionalLight{
		Color:         directionalColor,
		Intensity:     directionalIntensity,
		Position:      directionalPosition,
		CastShadow:    true,
		ShadowMapSize: 1024,
		ShadowNear:    0.5,
		ShadowFar:     50,
		node:          NewNode("directional-light"),
	}
	directional.node.Local.Position = directionalPosition
	graph.Root.Attach(directional.node)

	helper := NewDirectionalLightHelper(directional)
	graph.Root.Attach(helper.node)

	cmd.AddResources(ambient, directional, helper)
}
