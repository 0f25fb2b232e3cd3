package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Ghazaleh-ans/cub3d/input"
	"github.com/Ghazaleh-ans/cub3d/world"
)

func TestIntentToMotionForwardMovesAlongDir(t *testing.T) {
	p := world.PlayerState{Dir: mgl32.Vec2{0, -1}, Plane: mgl32.Vec2{0.66, 0}}
	dx, dy, theta := intentToMotion(p, input.Intent{Forward: true})
	if dx != 0 || dy >= 0 {
		t.Errorf("got (dx,dy)=(%v,%v), want dy < 0 along dir", dx, dy)
	}
	if theta != 0 {
		t.Errorf("got theta=%v, want 0 with no turn intent", theta)
	}
}

func TestIntentToMotionStrafeUsesNormalizedPlane(t *testing.T) {
	p := world.PlayerState{Dir: mgl32.Vec2{0, -1}, Plane: mgl32.Vec2{1.32, 0}}
	dx, _, _ := intentToMotion(p, input.Intent{StrafeRight: true})
	if dx <= 0 {
		t.Fatalf("got dx=%v, want positive (strafing toward +plane direction)", dx)
	}
	// Magnitude should not scale with |plane|; it's normalized first.
	p2 := world.PlayerState{Dir: mgl32.Vec2{0, -1}, Plane: mgl32.Vec2{0.1, 0}}
	dx2, _, _ := intentToMotion(p2, input.Intent{StrafeRight: true})
	if math.Abs(float64(dx-dx2)) > 1e-5 {
		t.Errorf("strafe distance depended on |plane|: got %v vs %v", dx, dx2)
	}
}

func TestIntentToMotionTurnAndMouseCombine(t *testing.T) {
	p := world.PlayerState{Dir: mgl32.Vec2{0, -1}, Plane: mgl32.Vec2{0.66, 0}}
	_, _, theta := intentToMotion(p, input.Intent{TurnRight: true, MouseDX: 100})
	if theta <= 0 {
		t.Errorf("got theta=%v, want positive from turn-right plus positive mouse delta", theta)
	}
}

func TestIntentToMotionNoIntentIsZero(t *testing.T) {
	p := world.PlayerState{Dir: mgl32.Vec2{0, -1}, Plane: mgl32.Vec2{0.66, 0}}
	dx, dy, theta := intentToMotion(p, input.Intent{})
	if dx != 0 || dy != 0 || theta != 0 {
		t.Errorf("got (%v,%v,%v), want all zero", dx, dy, theta)
	}
}
