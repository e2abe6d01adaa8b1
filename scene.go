package lumen

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type NodeId string

func makeNodeId() NodeId {
	return NodeId(uuid.New().String())
}

// Transform is a local TRS transform.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Node is a scene-graph node. A node owns its children; attaching a node to a
// new parent detaches it from the old one first.
type Node struct {
	id       NodeId
	Name     string
	Local    Transform
	Visible  bool
	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{
		id:      makeNodeId(),
		Name:    name,
		Local:   IdentityTransform(),
		Visible: true,
	}
}

func (n *Node) Id() NodeId {
	return n.id
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Attach(child *Node) *Node {
	if child.parent != nil {
		child.parent.Detach(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return n
}

func (n *Node) Detach(child *Node) {
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
}

// Visit walks the subtree depth-first, parents before children. Returning
// false from fn prunes the subtree below that node.
func (n *Node) Visit(fn func(node *Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Visit(fn)
	}
}

// WorldTransform composes local transforms from the root down.
// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos); propagating
// components directly preserves scale signs (reflections).
func (n *Node) WorldTransform() Transform {
	if n.parent == nil {
		return n.Local
	}
	parent := n.parent.WorldTransform()

	scaledLocalPos := mgl32.Vec3{
		n.Local.Position.X() * parent.Scale.X(),
		n.Local.Position.Y() * parent.Scale.Y(),
		n.Local.Position.Z() * parent.Scale.Z(),
	}

	return Transform{
		Position: parent.Position.Add(parent.Rotation.Rotate(scaledLocalPos)),
		Rotation: parent.Rotation.Mul(n.Local.Rotation).Normalize(),
		Scale: mgl32.Vec3{
			parent.Scale.X() * n.Local.Scale.X(),
			parent.Scale.Y() * n.Local.Scale.Y(),
			parent.Scale.Z() * n.Local.Scale.Z(),
		},
	}
}

// WorldVisible reports whether the node and all of its ancestors are visible.
func (n *Node) WorldVisible() bool {
	for node := n; node != nil; node = node.parent {
		if !node.Visible {
			return false
		}
	}
	return true
}

// SceneGraph is the top-level container. Camera, lights, overlays and the
// optional game-scene slot all hang off Root; render walks Root every frame.
type SceneGraph struct {
	Root *Node
}

func NewSceneGraph() *SceneGraph {
	return &SceneGraph{Root: NewNode("root")}
}

type SceneModule struct{}

func (mod SceneModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewSceneGraph())
}
