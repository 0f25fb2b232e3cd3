package engine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ghazaleh-ans/cub3d/config"
	"github.com/Ghazaleh-ans/cub3d/input"
	"github.com/Ghazaleh-ans/cub3d/world"
)

// intentToMotion turns one tick's Intent into a world-space
// translation and a rotation angle, using the player's current dir
// (forward/back) and plane (strafe) vectors. This is the "derive
// (dx, dy, theta) from input state" step of the kinematics contract;
// it lives here rather than in package input because it needs the
// player's current orientation, which input.Intent deliberately does
// not carry. The per-second move and rotate speeds are scaled by one
// tick's duration (1/ebiten.TPS()); the mouse term is not.
func intentToMotion(p world.PlayerState, in input.Intent) (dx, dy, theta float32) {
	dt := float32(1) / float32(ebiten.TPS())

	forward := float32(0)
	if in.Forward {
		forward++
	}
	if in.Back {
		forward--
	}

	strafe := float32(0)
	if in.StrafeRight {
		strafe++
	}
	if in.StrafeLeft {
		strafe--
	}

	if forward != 0 {
		move := p.Dir.Mul(forward * config.MoveSpeed * dt)
		dx += move.X()
		dy += move.Y()
	}
	if strafe != 0 {
		plane := p.Plane.Normalize()
		move := plane.Mul(strafe * config.MoveSpeed * dt)
		dx += move.X()
		dy += move.Y()
	}

	if in.TurnLeft {
		theta -= config.RotateSpeed * dt
	}
	if in.TurnRight {
		theta += config.RotateSpeed * dt
	}
	theta += float32(in.MouseDX) * config.MouseSensitivity

	return dx, dy, theta
}
