package world

import "github.com/go-gl/mathgl/mgl32"

// PlayerState is the only mutable part of the world: continuous
// position, gaze direction, and camera plane. It is mutated solely by
// the player package's kinematics during a tick's pre-render phase.
type PlayerState struct {
	Pos   mgl32.Vec2
	Dir   mgl32.Vec2
	Plane mgl32.Vec2
}

// SpawnDirPlane gives the initial dir/plane for each spawn glyph, per
// spec.md §3. planeLength is |plane| = tan(FOV/2); spec.md fixes it at
// 0.66 (FOV ~= 66deg).
func SpawnDirPlane(glyph byte, planeLength float32) (dir, plane mgl32.Vec2) {
	switch glyph {
	case SpawnN:
		return mgl32.Vec2{0, -1}, mgl32.Vec2{planeLength, 0}
	case SpawnS:
		return mgl32.Vec2{0, 1}, mgl32.Vec2{-planeLength, 0}
	case SpawnE:
		return mgl32.Vec2{1, 0}, mgl32.Vec2{0, planeLength}
	case SpawnW:
		return mgl32.Vec2{-1, 0}, mgl32.Vec2{0, -planeLength}
	default:
		return mgl32.Vec2{0, -1}, mgl32.Vec2{planeLength, 0}
	}
}
