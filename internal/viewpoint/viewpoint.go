// Package viewpoint holds the named camera poses the barista scene can be
// viewed from and the ordered store that owns them.
package viewpoint

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MIN_FIELD_OF_VIEW = 20.0
	MAX_FIELD_OF_VIEW = 120.0

	DEFAULT_FIELD_OF_VIEW = 60.0
)

var (
	// Forward is the camera's local viewing direction.
	Forward = mgl32.Vec3{0, 0, -1}
	Up      = mgl32.Vec3{0, 1, 0}
)

// Viewpoint is a named camera pose as it is stored and persisted.
// Rotation holds Euler angles in degrees: pitch (X), yaw (Y), roll (Z).
type Viewpoint struct {
	Name        string     `yaml:"name"`
	Position    mgl32.Vec3 `yaml:"position,flow"`
	Rotation    mgl32.Vec3 `yaml:"rotation,flow"`
	FieldOfView float32    `yaml:"field_of_view"`
}

// Pose is the live camera state the transition engine interpolates.
type Pose struct {
	Position    mgl32.Vec3
	Rotation    mgl32.Quat
	FieldOfView float32
}

// Pose converts the stored Euler angles to an orientation quaternion.
func (v Viewpoint) Pose() Pose {
	return Pose{
		Position:    v.Position,
		Rotation:    Orientation(v.Rotation),
		FieldOfView: v.FieldOfView,
	}
}

func (v Viewpoint) String() string {
	return fmt.Sprintf("%s: Pos(%.2f, %.2f, %.2f) Rot(%.1f, %.1f, %.1f) FOV(%.1f)",
		v.Name,
		v.Position.X(), v.Position.Y(), v.Position.Z(),
		v.Rotation.X(), v.Rotation.Y(), v.Rotation.Z(),
		v.FieldOfView)
}

// Orientation builds a unit quaternion from pitch/yaw/roll degrees, applied
// roll first, then pitch, then yaw.
func Orientation(euler mgl32.Vec3) mgl32.Quat {
	return mgl32.AnglesToQuat(
		mgl32.DegToRad(euler.Y()),
		mgl32.DegToRad(euler.X()),
		mgl32.DegToRad(euler.Z()),
		mgl32.YXZ,
	).Normalize()
}

// EulerDegrees is the inverse of Orientation. Near straight up or down the
// roll is folded into yaw.
func EulerDegrees(q mgl32.Quat) mgl32.Vec3 {
	m := q.Normalize().Mat4()
	sinPitch := mgl32.Clamp(-m.At(1, 2), -1, 1)
	pitch := math32.Asin(sinPitch)

	var yaw, roll float32
	if math32.Abs(sinPitch) < 0.9999 {
		yaw = math32.Atan2(m.At(0, 2), m.At(2, 2))
		roll = math32.Atan2(m.At(1, 0), m.At(1, 1))
	} else {
		yaw = math32.Atan2(-m.At(2, 0), m.At(0, 0))
	}
	return mgl32.Vec3{mgl32.RadToDeg(pitch), mgl32.RadToDeg(yaw), mgl32.RadToDeg(roll)}
}

// Direction returns the world-space viewing direction of the pose.
func (p Pose) Direction() mgl32.Vec3 {
	return p.Rotation.Rotate(Forward)
}

// UpVector returns the world-space up direction of the pose.
func (p Pose) UpVector() mgl32.Vec3 {
	return p.Rotation.Rotate(Up)
}

// Target is a point one unit in front of the camera.
func (p Pose) Target() mgl32.Vec3 {
	return p.Position.Add(p.Direction())
}

// ApproxEqual reports whether two poses match within an absolute epsilon.
// Rotations describing the same orientation (q and -q) compare equal.
func (p Pose) ApproxEqual(other Pose, epsilon float32) bool {
	for i := range p.Position {
		if mgl32.Abs(p.Position[i]-other.Position[i]) > epsilon {
			return false
		}
	}
	if mgl32.Abs(p.FieldOfView-other.FieldOfView) > epsilon {
		return false
	}
	return mgl32.Abs(p.Rotation.Normalize().Dot(other.Rotation.Normalize())) >= 1-epsilon
}

// ClampFieldOfView limits fov to the range editing tools accept.
func ClampFieldOfView(fov float32) float32 {
	return mgl32.Clamp(fov, MIN_FIELD_OF_VIEW, MAX_FIELD_OF_VIEW)
}
