package lumen

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Physics is the subsystem interface the frame scheduler consumes: one step
// per frame with the frame's delta time.
type Physics interface {
	Step(dt float64)
}

// PhysicsState wraps the installed simulation so hosts can swap in their own
// Physics implementation without touching the schedule.
type PhysicsState struct {
	Sim Physics
}

// RigidBody is a dynamic body bound to a scene-graph node. The world
// integrates velocities and writes positions back into the node transform.
type RigidBody struct {
	Node *Node

	Velocity     mgl32.Vec3
	Mass         float32
	GravityScale float32
	Restitution  float32
	HalfExtents  mgl32.Vec3
	IsStatic     bool

	Sleeping bool
	IdleTime float32
}

func (rb *RigidBody) Wake() {
	rb.Sleeping = false
	rb.IdleTime = 0
}

func (rb *RigidBody) ApplyImpulse(impulse mgl32.Vec3) {
	rb.Wake()
	if rb.Mass > 0 {
		rb.Velocity = rb.Velocity.Add(impulse.Mul(1.0 / rb.Mass))
	} else {
		rb.Velocity = rb.Velocity.Add(impulse)
	}
}

// PhysicsWorld is the default simulation: gravity, damping, integration, a
// ground plane at GroundY and sleeping. Synchronous; the scheduler steps it
// once per frame with the frame dt.
type PhysicsWorld struct {
	Gravity        mgl32.Vec3
	GroundY        float32
	LinearDamping  float32
	SleepThreshold float32
	SleepTime      float32

	graph  *SceneGraph
	bodies []*RigidBody
	steps  uint64
}

func NewPhysicsWorld(graph *SceneGraph) *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:        mgl32.Vec3{0, -9.81, 0},
		GroundY:        0,
		LinearDamping:  0.99,
		SleepThreshold: 0.05,
		SleepTime:      1.0,
		graph:          graph,
	}
}

// AddBody registers a body and attaches its node to the scene root if it is
// not already parented.
func (w *PhysicsWorld) AddBody(body *RigidBody) {
	if body.Node == nil {
		body.Node = NewNode("rigid-body")
	}
	if body.Node.Parent() == nil && w.graph != nil {
		w.graph.Root.Attach(body.Node)
	}
	w.bodies = append(w.bodies, body)
}

func (w *PhysicsWorld) Bodies() []*RigidBody {
	return w.bodies
}

func (w *PhysicsWorld) Steps() uint64 {
	return w.steps
}

func (w *PhysicsWorld) Step(dt float64) {
	w.steps++
	fdt := float32(dt)
	if fdt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if b.IsStatic || b.Sleeping {
			continue
		}

		if b.GravityScale != 0 {
			b.Velocity = b.Velocity.Add(w.Gravity.Mul(b.GravityScale * fdt))
		}
		b.Velocity = b.Velocity.Mul(w.LinearDamping)

		pos := b.Node.Local.Position.Add(b.Velocity.Mul(fdt))

		// Ground plane contact
		bottom := pos.Y() - b.HalfExtents.Y()
		if bottom < w.GroundY {
			pos[1] = w.GroundY + b.HalfExtents.Y()
			if b.Velocity.Y() < 0 {
				b.Velocity[1] = -b.Velocity.Y() * b.Restitution
				if b.Velocity.Y() < w.SleepThreshold {
					b.Velocity[1] = 0
				}
			}
		}

		b.Node.Local.Position = pos

		if b.Velocity.Len() < w.SleepThreshold {
			b.IdleTime += fdt
			if b.IdleTime > w.SleepTime {
				b.Sleeping = true
				b.Velocity = mgl32.Vec3{0, 0, 0}
			}
		} else {
			b.IdleTime = 0
		}
	}
}

// PhysicsModule binds the simulation to the scene graph. Sim overrides the
// default world (hosts with their own engine satisfy Physics).
type PhysicsModule struct {
	Sim Physics
}

func (mod PhysicsModule) Install(app *App, cmd *Commands) {
	sim := mod.Sim
	if sim == nil {
		sim = NewPhysicsWorld(ResourceOf[SceneGraph](app))
	}
	if world, ok := sim.(*PhysicsWorld); ok {
		cmd.AddResources(world)
	}
	cmd.AddResources(&PhysicsState{Sim: sim})

	app.UseSystem(
		System(physicsSystem).
			InStage(Update).
			WhenReady(),
	)
}

// physicsSystem runs after the tween system within Update: tweens may move
// transforms the simulation reads this frame.
func physicsSystem(state *PhysicsState, fc *FrameClock) {
	state.Sim.Step(fc.Dt)
}
