package world

// RGB is a color with components in [0, 255].
type RGB struct {
	R, G, B uint8
}

// ColorPair is the ceiling/floor background fill, applied to the upper
// and lower halves of the viewport respectively.
type ColorPair struct {
	Ceiling, Floor RGB
}
