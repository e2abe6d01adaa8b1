package lumen

import "github.com/go-gl/mathgl/mgl32"

// Gizmo is a wireframe debug line hung off a scene-graph node. The axes and
// light helpers are built from these.
type Gizmo struct {
	Start mgl32.Vec3
	End   mgl32.Vec3
	Color [4]float32
}

func NewGizmoLine(start, end mgl32.Vec3, color [4]float32) Gizmo {
	return Gizmo{
		Start: start,
		End:   end,
		Color: color,
	}
}

// AxesHelper is the origin axes debug gizmo: X red, Y green, Z blue.
type AxesHelper struct {
	Size  float32
	Lines [3]Gizmo
	node  *Node
}

func NewAxesHelper(size float32) *AxesHelper {
	if size <= 0 {
		size = 1
	}
	origin := mgl32.Vec3{0, 0, 0}
	helper := &AxesHelper{
		Size: size,
		Lines: [3]Gizmo{
			NewGizmoLine(origin, mgl32.Vec3{size, 0, 0}, [4]float32{1, 0, 0, 1}),
			NewGizmoLine(origin, mgl32.Vec3{0, size, 0}, [4]float32{0, 1, 0, 1}),
			NewGizmoLine(origin, mgl32.Vec3{0, 0, size}, [4]float32{0, 0, 1, 1}),
		},
		node: NewNode("axes-helper"),
	}
	return helper
}

func (h *AxesHelper) Node() *Node {
	return h.node
}

func (h *AxesHelper) SetVisible(visible bool) {
	h.node.Visible = visible
}

// HelpersModule attaches the axes helper and sets the clear color used by the
// render surface.
type HelpersModule struct {
	AxesSize   float32
	Background [4]float32
}

func (mod HelpersModule) Install(app *App, cmd *Commands) {
	graph := ResourceOf[SceneGraph](app)

	helper := NewAxesHelper(mod.AxesSize)
	graph.Root.Attach(helper.Node())
	cmd.AddResources(helper)

	if surface, ok := app.resources[renderSurfaceType()]; ok {
		surface.(*RenderSurface).SetClearColor(mod.Background)
	}
}
