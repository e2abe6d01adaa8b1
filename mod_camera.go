package lumen

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraRig is the perspective camera. Aspect changes mark the projection
// dirty; Projection() recomputes lazily so a resize never leaves a stale
// matrix for the next render.
type CameraRig struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	Fov    float32 // Vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	projDirty bool
	proj      mgl32.Mat4

	node *Node
}

func NewCameraRig(position mgl32.Vec3) *CameraRig {
	cam := &CameraRig{
		Position:  position,
		Target:    mgl32.Vec3{0, 0, 0},
		Up:        mgl32.Vec3{0, 1, 0},
		Fov:       60,
		Aspect:    1,
		Near:      0.1,
		Far:       1000,
		projDirty: true,
		node:      NewNode("camera"),
	}
	return cam
}

func (cam *CameraRig) Node() *Node {
	return cam.node
}

func (cam *CameraRig) SetAspect(aspect float32) {
	if aspect <= 0 || aspect == cam.Aspect {
		return
	}
	cam.Aspect = aspect
	cam.projDirty = true
}

func (cam *CameraRig) ProjectionDirty() bool {
	return cam.projDirty
}

func (cam *CameraRig) Projection() mgl32.Mat4 {
	if cam.projDirty {
		cam.proj = mgl32.Perspective(mgl32.DegToRad(cam.Fov), cam.Aspect, cam.Near, cam.Far)
		cam.projDirty = false
	}
	return cam.proj
}

func (cam *CameraRig) View() mgl32.Mat4 {
	return mgl32.LookAtV(cam.Position, cam.Target, cam.Up)
}

// OrbitControls rotates and zooms the camera around its target. Damped:
// input feeds velocities, and velocities decay every frame, so the update
// must run each frame even with zero input to settle.
type OrbitControls struct {
	Enabled bool

	Yaw      float32 // radians around Y
	Pitch    float32 // radians above horizon
	Distance float32

	RotateSpeed   float32
	ZoomSpeed     float32
	DampingFactor float32
	MinDistance   float32
	MaxDistance   float32

	yawVel   float32
	pitchVel float32
	zoomVel  float32
}

const orbitPitchLimit = float32(math.Pi/2) * 0.99

// NewOrbitControls derives the initial yaw/pitch/distance from the camera's
// start position relative to its target. Controls start disabled; the loading
// gate enables them.
func NewOrbitControls(cam *CameraRig) *OrbitControls {
	offset := cam.Position.Sub(cam.Target)
	distance := offset.Len()
	if distance == 0 {
		distance = 1
	}

	return &OrbitControls{
		Enabled:       false,
		Yaw:           float32(math.Atan2(float64(offset.X()), float64(offset.Z()))),
		Pitch:         float32(math.Asin(float64(offset.Y() / distance))),
		Distance:      distance,
		RotateSpeed:   0.005,
		ZoomSpeed:     0.5,
		DampingFactor: 0.1,
		MinDistance:   1,
		MaxDistance:   100,
	}
}

// Ingest accumulates one frame of input into the damped velocities.
func (oc *OrbitControls) Ingest(dYaw, dPitch, dZoom float32) {
	oc.yawVel += dYaw * oc.RotateSpeed
	oc.pitchVel += dPitch * oc.RotateSpeed
	oc.zoomVel += dZoom * oc.ZoomSpeed
}

// Settled reports whether the damped velocities have decayed to rest.
func (oc *OrbitControls) Settled() bool {
	const eps = 1e-6
	return float32(math.Abs(float64(oc.yawVel))) < eps &&
		float32(math.Abs(float64(oc.pitchVel))) < eps &&
		float32(math.Abs(float64(oc.zoomVel))) < eps
}

// Update applies velocities to the orbit and decays them, then recomputes the
// camera position on the orbit sphere.
func (oc *OrbitControls) Update(cam *CameraRig) {
	oc.Yaw += oc.yawVel
	oc.Pitch += oc.pitchVel
	oc.Distance += oc.zoomVel

	if oc.Pitch > orbitPitchLimit {
		oc.Pitch = orbitPitchLimit
	}
	if oc.Pitch < -orbitPitchLimit {
		oc.Pitch = -orbitPitchLimit
	}
	if oc.Distance < oc.MinDistance {
		oc.Distance = oc.MinDistance
	}
	if oc.Distance > oc.MaxDistance {
		oc.Distance = oc.MaxDistance
	}

	damping := 1 - oc.DampingFactor
	oc.yawVel *= damping
	oc.pitchVel *= damping
	oc.zoomVel *= damping

	sinYaw, cosYaw := math.Sincos(float64(oc.Yaw))
	sinPitch, cosPitch := math.Sincos(float64(oc.Pitch))

	offset := mgl32.Vec3{
		float32(cosPitch * sinYaw),
		float32(sinPitch),
		float32(cosPitch * cosYaw),
	}.Mul(oc.Distance)

	cam.Position = cam.Target.Add(offset)
	cam.node.Local.Position = cam.Position
}

// CameraModule provides the camera rig and its orbit controls. Controls are
// constructed disabled and enabled by the loading gate, so the camera cannot
// be manipulated before the scene is visually complete.
type CameraModule struct {
	StartPosition mgl32.Vec3
	Fov           float32
}

func (mod CameraModule) Install(app *App, cmd *Commands) {
	start := mod.StartPosition
	if start == (mgl32.Vec3{}) {
		start = mgl32.Vec3{4, 3, 8}
	}

	cam := NewCameraRig(start)
	if mod.Fov > 0 {
		cam.Fov = mod.Fov
	}
	if vp, ok := app.resources[viewportType()]; ok {
		cam.SetAspect(vp.(*Viewport).Aspect())
	}

	graph := ResourceOf[SceneGraph](app)
	cam.node.Local.Position = cam.Position
	graph.Root.Attach(cam.node)

	controls := NewOrbitControls(cam)
	cmd.AddResources(cam, controls)

	app.Lifecycle().OnReady(func() {
		controls.Enabled = true
	})

	app.UseSystem(
		System(orbitControlsSystem).
			InStage(PostUpdate).
			WhenReady(),
	)
}

// orbitControlsSystem runs gated, after physics within the frame, so the
// camera reads settled positions. Input only steers while enabled; damping
// always integrates so motion coasts to a stop.
func orbitControlsSystem(controls *OrbitControls, cam *CameraRig, input *Input) {
	if controls.Enabled {
		if input.Pressed[MouseButtonLeft] {
			controls.Ingest(float32(-input.MouseDeltaX), float32(input.MouseDeltaY), 0)
		}
		if input.ScrollY != 0 {
			controls.Ingest(0, 0, float32(-input.ScrollY))
		}
	}
	controls.Update(cam)
}
