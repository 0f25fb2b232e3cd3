// Package input implements the Input Intent Mapper: it polls the
// keyboard and pointer each tick and reduces them to a device-agnostic
// Intent, independent of any world or player state.
package input

import "github.com/hajimehoshi/ebiten/v2"

// Intent is the set of per-tick player intents derived from raw input.
// It carries no reference to PlayerState: the same Intent could be
// produced by a keyboard, a gamepad, or a scripted test.
type Intent struct {
	Forward, Back           bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
	Quit                    bool

	// MouseDX is the horizontal pointer movement since the previous
	// poll, in pixels; positive is rightward.
	MouseDX int
}

// Mapper polls ebiten's input state. It holds the one piece of
// across-tick state the mapping needs -- the previous cursor
// position -- the same way console.controller holds strobe/idx state
// between polls.
type Mapper struct {
	lastMouseX int
	hasLast    bool
}

// Poll reads the current keyboard and pointer state and returns the
// resulting Intent.
func (m *Mapper) Poll() Intent {
	x, _ := ebiten.CursorPosition()
	dx := 0
	if m.hasLast {
		dx = x - m.lastMouseX
	}
	m.lastMouseX = x
	m.hasLast = true

	return Intent{
		Forward:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Back:         ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		StrafeLeft:   ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight:  ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:     ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight:    ebiten.IsKeyPressed(ebiten.KeyRight),
		Quit:         ebiten.IsKeyPressed(ebiten.KeyEscape),
		MouseDX:      dx,
	}
}
