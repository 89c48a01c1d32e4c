// Package render draws the greybox scene with raylib from a camera pose.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"BaristaSimulator/internal/greybox"
	"BaristaSimulator/internal/viewpoint"
)

const (
	GRID_SLICES      = 20
	GRID_SPACING     = 0.25
	CYLINDER_SLICES  = 16
	FLOOR_SIZE       = 6.0
	WIRE_LIFT_FACTOR = 1.001
)

var (
	SkyColor     = rl.NewColor(128, 179, 230, 255)
	EquatorColor = rl.NewColor(102, 128, 153, 255)
	GroundColor  = rl.NewColor(51, 51, 51, 255)
	KeyLight     = rl.NewColor(255, 242, 204, 255)
	FillLight    = rl.NewColor(204, 217, 255, 255)
)

type Options struct {
	ShowGrid  bool
	Wireframe bool
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// CameraFromPose builds the raylib camera for a pose.
func CameraFromPose(p viewpoint.Pose) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(p.Position),
		Target:     vec3(p.Target()),
		Up:         vec3(p.UpVector()),
		Fovy:       p.FieldOfView,
		Projection: rl.CameraPerspective,
	}
}

func shade(base rl.Color, light rl.Color) rl.Color {
	return rl.NewColor(
		uint8(uint16(base.R)*uint16(light.R)/255),
		uint8(uint16(base.G)*uint16(light.G)/255),
		uint8(uint16(base.B)*uint16(light.B)/255),
		base.A,
	)
}

func getShapeColor(shape greybox.Shape) rl.Color {
	switch shape {
	case greybox.Cube:
		return shade(rl.LightGray, KeyLight)
	case greybox.Cylinder:
		return shade(rl.Gray, FillLight)
	default:
		return rl.Blank
	}
}

// Scene draws the greybox under the given pose. Must be called between
// rl.BeginDrawing and rl.EndDrawing.
func Scene(pose viewpoint.Pose, scene *greybox.Scene, options Options) {
	rl.ClearBackground(SkyColor)
	rl.BeginMode3D(CameraFromPose(pose))

	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(FLOOR_SIZE, FLOOR_SIZE), GroundColor)
	if options.ShowGrid {
		rl.DrawGrid(GRID_SLICES, GRID_SPACING)
	}

	scene.Primitives(func(n *greybox.Node, world greybox.Transform) {
		drawNode(n, world, options.Wireframe)
	})

	rl.EndMode3D()
}

func drawNode(n *greybox.Node, world greybox.Transform, wireframe bool) {
	angle, axis := world.AxisAngle()
	color := getShapeColor(n.Shape)

	rl.PushMatrix()
	rl.Translatef(world.Position.X(), world.Position.Y(), world.Position.Z())
	rl.Rotatef(angle, axis.X(), axis.Y(), axis.Z())

	origin := rl.NewVector3(0, 0, 0)
	switch n.Shape {
	case greybox.Cube:
		if !wireframe {
			rl.DrawCube(origin, n.Size.X(), n.Size.Y(), n.Size.Z(), color)
		}
		rl.DrawCubeWires(origin,
			n.Size.X()*WIRE_LIFT_FACTOR,
			n.Size.Y()*WIRE_LIFT_FACTOR,
			n.Size.Z()*WIRE_LIFT_FACTOR,
			EquatorColor)
	case greybox.Cylinder:
		// raylib cylinders grow up from their base
		base := rl.NewVector3(0, -n.Height/2, 0)
		if !wireframe {
			rl.DrawCylinder(base, n.Radius, n.Radius, n.Height, CYLINDER_SLICES, color)
		}
		rl.DrawCylinderWires(base, n.Radius, n.Radius, n.Height, CYLINDER_SLICES, EquatorColor)
	}

	rl.PopMatrix()
}
