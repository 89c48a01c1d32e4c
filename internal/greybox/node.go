// Package greybox builds the placeholder geometry of the coffee bar as a
// tree of primitive nodes. Nothing here draws; see package render.
package greybox

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"BaristaSimulator/internal/viewpoint"
)

type Shape int

const (
	Group Shape = iota
	Cube
	Cylinder
)

func (s Shape) String() string {
	switch s {
	case Group:
		return "Group"
	case Cube:
		return "Cube"
	case Cylinder:
		return "Cylinder"
	default:
		return "Unknown"
	}
}

const GREYBOX_TAG = "Greybox"

// Node is one primitive or grouping node. Position and Rotation (Euler
// degrees) are relative to the parent.
type Node struct {
	ID       string
	Name     string
	Shape    Shape
	Tag      string
	Size     mgl32.Vec3
	Radius   float32
	Height   float32
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Parent   *Node
	Children []*Node
}

// Transform is a node's placement in world space.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// AxisAngle expresses the rotation as an angle in degrees about a unit axis.
// The identity rotation reports a zero angle about +Y.
func (t Transform) AxisAngle() (float32, mgl32.Vec3) {
	q := t.Rotation.Normalize()
	if q.W < 0 {
		q = q.Scale(-1)
	}
	s := math32.Sqrt(1 - q.W*q.W)
	if s < 1e-6 {
		return 0, mgl32.Vec3{0, 1, 0}
	}
	angle := 2 * math32.Acos(mgl32.Clamp(q.W, -1, 1))
	return mgl32.RadToDeg(angle), q.V.Mul(1 / s)
}

func newNode(name string, shape Shape) *Node {
	n := &Node{
		ID:    uuid.NewString(),
		Name:  name,
		Shape: shape,
	}
	if shape != Group {
		n.Tag = GREYBOX_TAG
	}
	return n
}

func cube(name string, size mgl32.Vec3) *Node {
	n := newNode(name, Cube)
	n.Size = size
	return n
}

func cylinder(name string, radius, height float32) *Node {
	n := newNode(name, Cylinder)
	n.Radius = radius
	n.Height = height
	n.Size = mgl32.Vec3{radius * 2, height, radius * 2}
	return n
}

func group(name string) *Node {
	return newNode(name, Group)
}

func (n *Node) at(x, y, z float32) *Node {
	n.Position = mgl32.Vec3{x, y, z}
	return n
}

func (n *Node) rotated(pitch, yaw, roll float32) *Node {
	n.Rotation = mgl32.Vec3{pitch, yaw, roll}
	return n
}

// Attach makes child a child of n, keeping child's position as its local
// offset.
func (n *Node) Attach(child *Node) *Node {
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

func (n *Node) detach(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			break
		}
	}
	child.Parent = nil
}

// World resolves the node's world transform through its parents.
func (n *Node) World() Transform {
	local := Transform{Position: n.Position, Rotation: viewpoint.Orientation(n.Rotation)}
	if n.Parent == nil {
		return local
	}
	parent := n.Parent.World()
	return Transform{
		Position: parent.Position.Add(parent.Rotation.Rotate(local.Position)),
		Rotation: parent.Rotation.Mul(local.Rotation).Normalize(),
	}
}

// Walk visits n and its descendants depth first with their world transforms.
func (n *Node) Walk(fn func(node *Node, world Transform)) {
	n.walk(n.World(), fn)
}

func (n *Node) walk(world Transform, fn func(node *Node, world Transform)) {
	fn(n, world)
	for _, c := range n.Children {
		cw := Transform{
			Position: world.Position.Add(world.Rotation.Rotate(c.Position)),
			Rotation: world.Rotation.Mul(viewpoint.Orientation(c.Rotation)).Normalize(),
		}
		c.walk(cw, fn)
	}
}
