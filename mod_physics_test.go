package lumen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPhysicsGravityIntegration(t *testing.T) {
	graph := NewSceneGraph()
	world := NewPhysicsWorld(graph)
	world.Gravity = mgl32.Vec3{0, -10, 0}
	world.GroundY = -100

	body := &RigidBody{
		Mass:         1.0,
		GravityScale: 1.0,
		HalfExtents:  mgl32.Vec3{0.5, 0.5, 0.5},
	}
	body.Node = NewNode("crate")
	body.Node.Local.Position = mgl32.Vec3{0, 10, 0}
	world.AddBody(body)

	for i := 0; i < 10; i++ {
		world.Step(0.1)
	}

	if body.Node.Local.Position.Y() >= 10 {
		t.Errorf("Body should have fallen, but Y = %f", body.Node.Local.Position.Y())
	}
	if body.Velocity.Y() >= 0 {
		t.Errorf("Body should have negative velocity, but VY = %f", body.Velocity.Y())
	}
	if world.Steps() != 10 {
		t.Errorf("Expected 10 steps, got %d", world.Steps())
	}
}

func TestPhysicsGroundContact(t *testing.T) {
	graph := NewSceneGraph()
	world := NewPhysicsWorld(graph)

	body := &RigidBody{
		Mass:         1.0,
		GravityScale: 1.0,
		Restitution:  0,
		HalfExtents:  mgl32.Vec3{0.5, 0.5, 0.5},
	}
	body.Node = NewNode("crate")
	body.Node.Local.Position = mgl32.Vec3{0, 2, 0}
	world.AddBody(body)

	for i := 0; i < 600; i++ {
		world.Step(1.0 / 60.0)
	}

	bottom := body.Node.Local.Position.Y() - body.HalfExtents.Y()
	if bottom < world.GroundY-0.001 {
		t.Errorf("Body sank through the ground, bottom = %f", bottom)
	}
	if !body.Sleeping {
		t.Errorf("Body at rest should be sleeping")
	}
}

func TestPhysicsSleepingAndWake(t *testing.T) {
	graph := NewSceneGraph()
	world := NewPhysicsWorld(graph)
	world.SleepThreshold = 0.1
	world.SleepTime = 0.2

	body := &RigidBody{
		Mass:         1.0,
		GravityScale: 0,
		HalfExtents:  mgl32.Vec3{0.5, 0.5, 0.5},
	}
	body.Node = NewNode("idle")
	body.Node.Local.Position = mgl32.Vec3{0, 5, 0}
	world.AddBody(body)

	for i := 0; i < 30; i++ {
		world.Step(1.0 / 60.0)
	}
	if !body.Sleeping {
		t.Fatalf("Idle body should fall asleep")
	}

	pos := body.Node.Local.Position
	world.Step(1.0 / 60.0)
	if body.Node.Local.Position != pos {
		t.Errorf("Sleeping body must not move")
	}

	body.ApplyImpulse(mgl32.Vec3{5, 0, 0})
	if body.Sleeping {
		t.Errorf("Impulse should wake the body")
	}
	world.Step(1.0 / 60.0)
	if body.Node.Local.Position.X() <= pos.X() {
		t.Errorf("Woken body should move, X = %f", body.Node.Local.Position.X())
	}
}

func TestPhysicsStaticBodiesNeverMove(t *testing.T) {
	graph := NewSceneGraph()
	world := NewPhysicsWorld(graph)

	body := &RigidBody{
		IsStatic:    true,
		HalfExtents: mgl32.Vec3{10, 0.5, 10},
	}
	body.Node = NewNode("floor")
	body.Node.Local.Position = mgl32.Vec3{0, 3, 0}
	world.AddBody(body)

	for i := 0; i < 100; i++ {
		world.Step(1.0 / 60.0)
	}

	if body.Node.Local.Position.Y() != 3 {
		t.Errorf("Static body moved to Y = %f", body.Node.Local.Position.Y())
	}
}

func TestPhysicsAddBodyAttachesToSceneRoot(t *testing.T) {
	graph := NewSceneGraph()
	world := NewPhysicsWorld(graph)

	body := &RigidBody{Mass: 1, HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}}
	world.AddBody(body)

	if body.Node == nil {
		t.Fatalf("AddBody should create a node when missing")
	}
	if body.Node.Parent() != graph.Root {
		t.Errorf("Body node should be parented to the scene root")
	}
}

func TestPhysicsZeroDeltaIsNoOp(t *testing.T) {
	graph := NewSceneGraph()
	world := NewPhysicsWorld(graph)

	body := &RigidBody{Mass: 1, GravityScale: 1, HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}}
	body.Node = NewNode("crate")
	body.Node.Local.Position = mgl32.Vec3{0, 10, 0}
	world.AddBody(body)

	world.Step(0)

	if body.Node.Local.Position.Y() != 10 {
		t.Errorf("Zero delta must not move the body")
	}
}
