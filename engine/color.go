package engine

// rgbaColor adapts a packed (r, g, b, a) byte tuple to color.Color so
// minimap pixels can be handed straight to (*ebiten.Image).Set without
// an intermediate image.RGBA allocation.
type rgbaColor struct {
	r, g, b, a uint8
}

func (c rgbaColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.r) * 0x101, uint32(c.g) * 0x101, uint32(c.b) * 0x101, uint32(c.a) * 0x101
}
