// Package transition interpolates a camera pose toward a target over a
// fixed duration. The engine is stepped explicitly by the host loop.
package transition

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"BaristaSimulator/internal/viewpoint"
)

const DEFAULT_DURATION = 500 * time.Millisecond

// slerp falls back to nlerp above this dot product.
const nearlyParallel = 0.9995

type Engine struct {
	start    viewpoint.Pose
	target   viewpoint.Pose
	duration time.Duration
	elapsed  time.Duration
	easing   Easing
	done     bool
}

// New prepares a run from start to target. A nil easing selects EaseInOut.
func New(start, target viewpoint.Pose, duration time.Duration, easing Easing) *Engine {
	if easing == nil {
		easing = EaseInOut
	}
	return &Engine{
		start:    start,
		target:   target,
		duration: duration,
		easing:   easing,
	}
}

func (e *Engine) Target() viewpoint.Pose {
	return e.target
}

func (e *Engine) Elapsed() time.Duration {
	return e.elapsed
}

func (e *Engine) Done() bool {
	return e.done
}

// Tick advances the run by dt and returns the pose for the new elapsed time
// and whether the target has been reached. Negative steps are ignored.
func (e *Engine) Tick(dt time.Duration) (viewpoint.Pose, bool) {
	if dt > 0 {
		e.elapsed += dt
	}
	pose := e.Evaluate(e.elapsed)
	if e.duration <= 0 || e.elapsed >= e.duration {
		e.done = true
	}
	return pose, e.done
}

// Evaluate returns the interpolated pose at elapsed. Once elapsed reaches the
// duration the target is returned as is.
func (e *Engine) Evaluate(elapsed time.Duration) viewpoint.Pose {
	if e.duration <= 0 || elapsed >= e.duration {
		return e.target
	}
	t := mgl32.Clamp(float32(float64(elapsed)/float64(e.duration)), 0, 1)
	return Blend(e.start, e.target, e.easing(t))
}

// Blend mixes two poses by amount: position and field of view linearly,
// rotation along the shortest arc.
func Blend(from, to viewpoint.Pose, amount float32) viewpoint.Pose {
	return viewpoint.Pose{
		Position:    lerpVec3(from.Position, to.Position, amount),
		Rotation:    slerpShortest(from.Rotation, to.Rotation, amount),
		FieldOfView: lerp(from.FieldOfView, to.FieldOfView, amount),
	}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func slerpShortest(from, to mgl32.Quat, t float32) mgl32.Quat {
	from, to = from.Normalize(), to.Normalize()
	dot := from.Dot(to)
	if dot < 0 {
		to = to.Scale(-1)
		dot = -dot
	}
	if dot > nearlyParallel {
		return mgl32.QuatNlerp(from, to, t)
	}
	return mgl32.QuatSlerp(from, to, t)
}
